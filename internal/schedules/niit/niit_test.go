package niit

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

func TestBelowThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	result := Compute(store, model, lit(store, "test.nii", money.NewFromDollars(10000)), lit(store, "test.magi", money.NewFromDollars(180000)))
	assert.Equal(t, money.Cents(0), result.Tax.Amount)
}

func TestNIILessThanExcess(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	// magi $250,000, threshold $200,000, excess $50,000; nii $10,000 is the lesser
	result := Compute(store, model, lit(store, "test.nii", money.NewFromDollars(10000)), lit(store, "test.magi", money.NewFromDollars(250000)))
	assert.Equal(t, money.NewFromDollars(380), result.Tax.Amount) // 3.8% of $10,000
}

func TestExcessLessThanNII(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.MarriedFilingJointly}
	// magi $280,000, threshold $250,000, excess $30,000 is the lesser of nii $100,000
	result := Compute(store, model, lit(store, "test.nii", money.NewFromDollars(100000)), lit(store, "test.magi", money.NewFromDollars(280000)))
	assert.Equal(t, money.NewFromDollars(1140), result.Tax.Amount) // 3.8% of $30,000
}

func TestNegativeNIIFloorsAtZero(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	result := Compute(store, model, lit(store, "test.nii", -500000), lit(store, "test.magi", money.NewFromDollars(300000)))
	assert.Equal(t, money.Cents(0), result.Tax.Amount)
}
