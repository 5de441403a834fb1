package addlmedicare

import (
	"testing"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func wages(store *tracer.Store, amount money.Cents) money.TracedValue {
	return store.Put(money.Literal(amount, "test.medicareWages", "medicare wages"))
}

func seEarnings(store *tracer.Store, amount money.Cents) money.TracedValue {
	return store.Put(money.Literal(amount, "test.seEarnings", "SE earnings"))
}

func TestBelowThresholdSingle(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	result := Compute(store, model, wages(store, money.NewFromDollars(150000)), seEarnings(store, 0))
	assert.Equal(t, money.Cents(0), result.Tax.Amount)
}

func TestAboveThresholdSingle(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	// threshold is $200,000 single; $220,000 wages => $20,000 excess x 0.9% = $180
	result := Compute(store, model, wages(store, money.NewFromDollars(220000)), seEarnings(store, 0))
	assert.Equal(t, constants.AddlMedicareThreshold[domain.Single], money.NewFromDollars(200000))
	assert.Equal(t, money.NewFromDollars(180), result.Tax.Amount)
}

func TestCombinesWagesAndSEEarnings(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.MarriedFilingJointly}
	// threshold $250,000 MFJ; $200,000 wages + $100,000 SE = $300,000 combined, $50,000 excess x 0.9% = $450
	result := Compute(store, model, wages(store, money.NewFromDollars(200000)), seEarnings(store, money.NewFromDollars(100000)))
	assert.Equal(t, money.NewFromDollars(450), result.Tax.Amount)
}

func TestMFSThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.MarriedFilingSeparately}
	// threshold $125,000 MFS; $130,000 wages => $5,000 excess x 0.9% = $45
	result := Compute(store, model, wages(store, money.NewFromDollars(130000)), seEarnings(store, 0))
	assert.Equal(t, money.NewFromDollars(45), result.Tax.Amount)
}
