package credits

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestEducationAOTCTwoTier(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Credits: domain.CreditInputs{
			Education: []domain.EducationExpense{
				{StudentName: "Alex", QualifiedExpenses: money.NewFromDollars(5000), FirstFourYears: true, HalfTimeOrMore: true},
			},
		},
	}
	result := ComputeEducation(store, model)
	// $2,000 at 100% + $2,000 at 25% = $2,000 + $500 = $2,500.
	assert.Equal(t, money.NewFromDollars(2500), result.AOTCNonrefundable.Amount.Add(result.AOTCRefundable.Amount))
	assert.Equal(t, money.NewFromDollars(1000), result.AOTCRefundable.Amount) // 40% refundable
}

func TestEducationLLCCapped(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Credits: domain.CreditInputs{
			Education: []domain.EducationExpense{
				{StudentName: "Jordan", QualifiedExpenses: money.NewFromDollars(15000)},
			},
		},
	}
	result := ComputeEducation(store, model)
	// Capped at $10,000 x 20% = $2,000.
	assert.Equal(t, money.NewFromDollars(2000), result.LLCCredit.Amount)
}

func TestDependentCareSinglePersonCap(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Credits: domain.CreditInputs{
			DependentCare: []domain.DependentCareExpense{{DependentName: "Sam", Expenses: money.NewFromDollars(5000)}},
		},
	}
	earnedFloor := store.Put(money.Literal(money.NewFromDollars(50000), "test.earnedFloor", "earned income floor"))
	result := ComputeDependentCare(store, model, earnedFloor)
	// Capped at $3,000 x 20% = $600.
	assert.Equal(t, money.NewFromDollars(600), result.Credit.Amount)
}

func TestEnergyCreditMixedRates(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		Credits: domain.CreditInputs{
			EnergyImprovements: []domain.EnergyImprovement{
				{Description: "heat pump", Cost: money.NewFromDollars(10000), CreditRateBps: 3000},
				{Description: "windows", Cost: money.NewFromDollars(2000), CreditRateBps: 1000},
			},
		},
	}
	result := ComputeEnergy(store, model)
	assert.Equal(t, money.NewFromDollars(3000)+money.NewFromDollars(200), result.Credit.Amount)
}

func TestSaverCreditTopRate(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Credits:      domain.CreditInputs{RetirementContributions: money.NewFromDollars(3000)},
	}
	agi := store.Put(money.Literal(money.NewFromDollars(20000), "test.agi", "agi"))
	result := ComputeSaverCredit(store, model, agi)
	assert.Equal(t, int64(5000), result.RateBps)
	// Capped at $2,000 contribution x 50% = $1,000.
	assert.Equal(t, money.NewFromDollars(1000), result.Credit.Amount)
}

func TestSaverCreditAboveTopBracket(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		FilingStatus: domain.Single,
		Credits:      domain.CreditInputs{RetirementContributions: money.NewFromDollars(2000)},
	}
	agi := store.Put(money.Literal(money.NewFromDollars(100000), "test.agi", "agi"))
	result := ComputeSaverCredit(store, model, agi)
	assert.Equal(t, int64(0), result.RateBps)
	assert.Equal(t, money.Cents(0), result.Credit.Amount)
}

func TestForeignTaxDirectElection(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{DirectForeignTaxCreditElection: true}
	divFT := store.Put(money.Literal(money.NewFromDollars(200), "test.divFT", "1099-DIV box 7"))
	tax := store.Put(money.Literal(money.NewFromDollars(20000), "test.tax", "tax before credits"))
	result := ComputeForeignTax(store, model, divFT, tax, money.FullRatio())
	assert.True(t, result.DirectElection)
	assert.Equal(t, money.NewFromDollars(200), result.Credit.Amount)
}

func TestForeignTaxLimitedByRatio(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{DirectForeignTaxCreditElection: false}
	divFT := store.Put(money.Literal(money.NewFromDollars(5000), "test.divFT", "1099-DIV box 7"))
	tax := store.Put(money.Literal(money.NewFromDollars(20000), "test.tax", "tax before credits"))
	result := ComputeForeignTax(store, model, divFT, tax, money.NewRatio(1, 10))
	// limitation = 10% x $20,000 = $2,000, less than $5,000 paid.
	assert.Equal(t, money.NewFromDollars(2000), result.Credit.Amount)
}
