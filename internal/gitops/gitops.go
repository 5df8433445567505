package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Author identifies who records a snapshot commit.
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	if _, err := run(dir, nil, "init", "--quiet"); err != nil {
		return err
	}
	return nil
}

// CommitAll stages every file and records a snapshot commit authored and
// committed by author. Returns the short commit hash.
func CommitAll(dir, message string, author Author) (string, error) {
	if _, err := run(dir, nil, "add", "-A"); err != nil {
		return "", err
	}

	env := []string{
		"GIT_AUTHOR_NAME=" + author.Name,
		"GIT_AUTHOR_EMAIL=" + author.Email,
		"GIT_COMMITTER_NAME=" + author.Name,
		"GIT_COMMITTER_EMAIL=" + author.Email,
	}
	if _, err := run(dir, env, "commit", "--quiet", "-m", message, "--author", author.String()); err != nil {
		return "", err
	}

	return Head(dir)
}

// Head returns the short hash of the current commit.
func Head(dir string) (string, error) {
	out, err := run(dir, nil, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func run(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}
