package scheduled

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func zeroCapGain(store *tracer.Store) money.TracedValue {
	return store.Put(money.Zero("test.capGainDist", "no 1099-DIV box 2a"))
}

func TestScenarioCRSUSale(t *testing.T) {
	store := tracer.NewStore()
	basis := money.Cents(0)
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		SaleTransactions: []domain.SaleTransaction{
			{
				Description:      "RSU vest sale",
				Proceeds:          3575000,
				AdjustedBasis:     3250000,
				ReportedBasis:     &basis,
				LongTerm:          true,
				Category:          domain.CategoryE,
				AdjustmentCode:    "B",
				AdjustmentAmount:  3250000,
			},
		},
	}
	result := Compute(store, model, zeroCapGain(store))
	assert.Equal(t, money.Cents(325000), result.Form8949.Categories[domain.CategoryE].TotalGainLoss.Amount)
	assert.Equal(t, money.Cents(325000), result.Line21.Amount)
}

func TestWashSaleClampsToZero(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		SaleTransactions: []domain.SaleTransaction{
			{
				Description:       "KO wash sale",
				Proceeds:           500000,
				AdjustedBasis:      570000,
				LongTerm:           true,
				Category:           domain.CategoryE,
				WashSaleDisallowed: 70000,
			},
		},
	}
	result := Compute(store, model, zeroCapGain(store))
	assert.Equal(t, money.Cents(0), result.Form8949.Categories[domain.CategoryE].TotalGainLoss.Amount)
}

func TestCapitalLossCapSingle(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		SaleTransactions: []domain.SaleTransaction{
			{Description: "big loss", Proceeds: 0, AdjustedBasis: 1000000, LongTerm: true, Category: domain.CategoryE},
		},
	}
	result := Compute(store, model, zeroCapGain(store))
	assert.Equal(t, money.Cents(-300000), result.Line21.Amount)
	assert.Equal(t, money.Cents(700000), result.CarryforwardLongTerm.Amount)
}

func TestCapitalLossCapMFS(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.MarriedFilingSeparately,
		SaleTransactions: []domain.SaleTransaction{
			{Description: "loss", Proceeds: 0, AdjustedBasis: 500000, LongTerm: true, Category: domain.CategoryE},
		},
	}
	result := Compute(store, model, zeroCapGain(store))
	assert.Equal(t, money.Cents(-150000), result.Line21.Amount)
}
