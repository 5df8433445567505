package accounts

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/regu-ai/regu/internal/model"
)

// ErrUnknownEntityType is returned for an entity type with no default chart.
var ErrUnknownEntityType = errors.New("unknown entity type")

// EntityBLUHospital is a BLU public hospital (RSUD / RS vertikal).
const EntityBLUHospital = "blu_hospital"

// DefaultChart returns the default chart of accounts for an entity type.
func DefaultChart(entityType string) ([]model.Account, error) {
	switch entityType {
	case EntityBLUHospital:
		return bluHospitalChart(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
}

func idr(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func bluHospitalChart() []model.Account {
	return []model.Account{
		{Code: "1001", Name: "Kas BLU", Category: model.CategoryAsset, CurrentAmount: idr(1_500_000_000), PreviousAmount: idr(1_200_000_000), IsLiquid: true},
		{Code: "1002", Name: "Investasi Jangka Pendek (Deposito 6 bln)", Category: model.CategoryAsset, CurrentAmount: idr(500_000_000), PreviousAmount: idr(0), InvestmentTermMonths: 6},
		{Code: "1003", Name: "Piutang Pelayanan", Category: model.CategoryAsset, CurrentAmount: idr(850_000_000), PreviousAmount: idr(700_000_000)},
		{Code: "1201", Name: "Aset Tetap - Gedung & Bangunan", Category: model.CategoryAsset, CurrentAmount: idr(15_000_000_000), PreviousAmount: idr(15_500_000_000)},
		{Code: "2001", Name: "Utang Usaha", Category: model.CategoryLiability, CurrentAmount: idr(400_000_000), PreviousAmount: idr(350_000_000)},
		{Code: "2002", Name: "Pendapatan Diterima Dimuka", Category: model.CategoryLiability, CurrentAmount: idr(100_000_000), PreviousAmount: idr(50_000_000)},
		{Code: "3001", Name: "Ekuitas Awal", Category: model.CategoryEquity, CurrentAmount: idr(16_850_000_000), PreviousAmount: idr(17_000_000_000)},
		{Code: "4001", Name: "Pendapatan Jasa Layanan", Category: model.CategoryRevenue, CurrentAmount: idr(5_200_000_000), PreviousAmount: idr(4_800_000_000)},
		{Code: "4002", Name: "Pendapatan APBN", Category: model.CategoryRevenue, CurrentAmount: idr(1_000_000_000), PreviousAmount: idr(1_000_000_000)},
		{Code: "5001", Name: "Beban Pegawai", Category: model.CategoryExpense, CurrentAmount: idr(2_500_000_000), PreviousAmount: idr(2_400_000_000)},
		{Code: "5002", Name: "Beban Persediaan", Category: model.CategoryExpense, CurrentAmount: idr(1_200_000_000), PreviousAmount: idr(1_100_000_000)},
		{Code: "5003", Name: "Beban Penyusutan", Category: model.CategoryExpense, CurrentAmount: idr(500_000_000), PreviousAmount: idr(500_000_000)},
	}
}
