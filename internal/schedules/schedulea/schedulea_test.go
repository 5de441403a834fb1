package schedulea

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func agi(store *tracer.Store, amount money.Cents) money.TracedValue {
	return store.Put(money.Literal(amount, "test.agi", "preliminary AGI"))
}

func TestNotItemizedReturnsZero(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{DeductionMethod: domain.DeductionStandard}
	result := Compute(store, model, agi(store, money.NewFromDollars(100000)), agi(store, 0))
	assert.Equal(t, money.Cents(0), result.Line17Total.Amount)
}

func TestMedicalFloor(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Itemized: &domain.ItemizedWorksheet{TotalMedicalExpenses: money.NewFromDollars(10000)},
	}
	// AGI $100,000 => floor $7,500; deduction = $10,000 - $7,500 = $2,500.
	result := Compute(store, model, agi(store, money.NewFromDollars(100000)), store.Put(money.Zero("test.nii", "nii")))
	assert.Equal(t, money.NewFromDollars(2500), result.Line4Medical.Amount)
}

func TestSALTCapBelowThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Itemized: &domain.ItemizedWorksheet{
			StateIncomeTaxPaid:  money.NewFromDollars(30000),
			RealEstateTaxesPaid: money.NewFromDollars(20000),
		},
	}
	// $50,000 SALT exceeds the $40,000 cap; AGI well under phase-out threshold.
	result := Compute(store, model, agi(store, money.NewFromDollars(100000)), store.Put(money.Zero("test.nii", "nii")))
	assert.Equal(t, money.NewFromDollars(40000), result.Line7SALT.Amount)
}

func TestSALTCapPhaseOut(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Itemized: &domain.ItemizedWorksheet{
			StateIncomeTaxPaid: money.NewFromDollars(50000),
		},
	}
	// AGI $600,000 is $100,000 over the $500,000 threshold; reduction =
	// 30% x $100,000 = $30,000, reduced cap = $40,000 - $30,000 = $10,000.
	result := Compute(store, model, agi(store, money.NewFromDollars(600000)), store.Put(money.Zero("test.nii", "nii")))
	assert.Equal(t, money.NewFromDollars(10000), result.Line7SALT.Amount)
}

func TestMortgageInterestProratedAboveLimit(t *testing.T) {
	store := tracer.NewStore()
	principal := money.NewFromDollars(1500000)
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Itemized: &domain.ItemizedWorksheet{
			HomeMortgageInterest:    money.NewFromDollars(60000),
			MortgagePrincipalUnpaid: &principal,
		},
	}
	// $750,000 limit / $1,500,000 principal = 0.5 ratio; $60,000 x 0.5 = $30,000.
	result := Compute(store, model, agi(store, money.NewFromDollars(200000)), store.Put(money.Zero("test.nii", "nii")))
	assert.Equal(t, money.NewFromDollars(30000), result.Line10Interest.Amount)
}

func TestInvestmentInterestCappedWithCarryforward(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Itemized:     &domain.ItemizedWorksheet{InvestmentInterestPaid: money.NewFromDollars(5000)},
	}
	nii := store.Put(money.Literal(money.NewFromDollars(3000), "test.nii", "net investment income"))
	result := Compute(store, model, agi(store, money.NewFromDollars(200000)), nii)
	assert.Equal(t, money.NewFromDollars(3000), result.Line10Interest.Amount)
	assert.Equal(t, money.NewFromDollars(2000), result.InvestmentInterestCarryforward.Amount)
}

func TestCharityCashAndNonCashCaps(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Itemized: &domain.ItemizedWorksheet{
			CashCharitableContributions:    money.NewFromDollars(70000),
			NonCashCharitableContributions: money.NewFromDollars(40000),
		},
	}
	// AGI $100,000: cash cap 60% = $60,000, noncash cap 30% = $30,000.
	result := Compute(store, model, agi(store, money.NewFromDollars(100000)), store.Put(money.Zero("test.nii", "nii")))
	assert.Equal(t, money.NewFromDollars(60000), result.Line14Charity.Amount.Sub(money.NewFromDollars(30000)))
	assert.Equal(t, money.NewFromDollars(10000), result.CharityCashCarryforward.Amount)
	assert.Equal(t, money.NewFromDollars(10000), result.CharityNonCashCarryforward.Amount)
}

func TestLine17TotalsAllComponents(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Itemized: &domain.ItemizedWorksheet{
			CasualtyTheftLoss: money.NewFromDollars(1000),
			OtherItemized:     money.NewFromDollars(500),
		},
	}
	result := Compute(store, model, agi(store, 0), store.Put(money.Zero("test.nii", "nii")))
	assert.Equal(t, money.NewFromDollars(1500), result.Line17Total.Amount)
}
