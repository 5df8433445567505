package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !Available() {
		t.Skip("git not available")
	}
}

func TestInit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "receivables.csv"), []byte("id\n"), 0o644))

	author := Author{Name: "Test Author", Email: "test@example.com"}
	hash, err := CommitAll(dir, "snapshot: Dec 2023", author)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s|%an <%ae>|%cn", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "snapshot: Dec 2023")
	assert.Contains(t, string(out), "Test Author <test@example.com>")
	assert.Contains(t, string(out), "|Test Author")
}

func TestCommitAll_NothingToCommit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := CommitAll(dir, "empty", Author{Name: "A", Email: "a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git commit")
}

func TestAuthorString(t *testing.T) {
	assert.Equal(t, "Regu <r@example.com>", Author{Name: "Regu", Email: "r@example.com"}.String())
}

func TestHead(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := Head(dir)
	assert.Error(t, err, "no commits yet")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "regu.yaml"), []byte("entity: {}\n"), 0o644))
	hash, err := CommitAll(dir, "init", Author{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	head, err := Head(dir)
	require.NoError(t, err)
	assert.Equal(t, hash, head)
}
