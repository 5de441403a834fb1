package amt

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func lit(store *tracer.Store, id string, amount money.Cents) money.TracedValue {
	return store.Put(money.Literal(amount, id, id))
}

func TestNoAMTWhenTMTBelowRegularTax(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	result := Compute(store, model,
		lit(store, "test.taxableIncome", money.NewFromDollars(100000)),
		lit(store, "test.saltAddback", 0),
		lit(store, "test.regularTax", money.NewFromDollars(50000)),
	)
	assert.False(t, result.Triggered)
	assert.Equal(t, money.Cents(0), result.AMT.Amount)
}

func TestSALTAddbackTriggersAMT(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	// AMTI = $150,000 taxable + $40,000 SALT addback = $190,000.
	// exemption $88,100 (no phase-out, AMTI well under $626,350 threshold).
	// base = $190,000 - $88,100 = $101,900, all in the 26% tier.
	// TMT = 26% * $101,900 = $26,494. If regular tax understates that by
	// relying on the SALT deduction, AMT makes up the difference.
	result := Compute(store, model,
		lit(store, "test.taxableIncome", money.NewFromDollars(150000)),
		lit(store, "test.saltAddback", money.NewFromDollars(40000)),
		lit(store, "test.regularTax", money.NewFromDollars(20000)),
	)
	assert.True(t, result.Triggered)
	assert.Equal(t, money.NewFromDollars(26494), result.TentativeMinimumTax.Amount)
	assert.Equal(t, money.NewFromDollars(6494), result.AMT.Amount)
}

func TestExemptionPhaseOut(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	// AMTI $726,350 is $100,000 over the $626,350 phase-out threshold;
	// phase-out = 25% * $100,000 = $25,000, leaving exemption
	// $88,100 - $25,000 = $63,100.
	result := Compute(store, model,
		lit(store, "test.taxableIncome", money.NewFromDollars(726350)),
		lit(store, "test.saltAddback", 0),
		lit(store, "test.regularTax", 0),
	)
	assert.Equal(t, money.NewFromDollars(25000), result.ExemptionPhaseOut.Amount)
	assert.Equal(t, money.NewFromDollars(63100), result.Exemption.Amount)
}

func TestExemptionFullyPhasedOut(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	// AMTI far above threshold phases the exemption out entirely but never
	// negative.
	result := Compute(store, model,
		lit(store, "test.taxableIncome", money.NewFromDollars(2000000)),
		lit(store, "test.saltAddback", 0),
		lit(store, "test.regularTax", 0),
	)
	assert.Equal(t, money.Cents(0), result.Exemption.Amount)
}

func TestTwentyEightPercentTier(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	// AMTI $400,000, exemption $88,100 (no phase-out since AMTI < $626,350),
	// base = $311,900. $239,100 at 26% + $72,800 at 28%.
	result := Compute(store, model,
		lit(store, "test.taxableIncome", money.NewFromDollars(400000)),
		lit(store, "test.saltAddback", 0),
		lit(store, "test.regularTax", 0),
	)
	expected := money.NewFromDollars(239100)*26/100 + money.NewFromDollars(72800)*28/100
	assert.Equal(t, expected, result.TentativeMinimumTax.Amount)
}
