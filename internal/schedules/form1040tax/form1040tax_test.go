package form1040tax

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func lit(store *tracer.Store, id string, amount money.Cents) money.TracedValue {
	return store.Put(money.Literal(amount, id, "test"))
}

func TestAllOrdinaryIncomeAcrossFiveBrackets(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	taxableIncome := lit(store, "ti", money.NewFromDollars(200000))
	zero := store.Put(money.Zero("zero", "none"))

	result := Compute(store, model, taxableIncome, zero, zero)

	assert.Equal(t, money.Cents(0), result.PreferentialIncome.Amount)
	assert.Equal(t, money.NewFromDollars(200000), result.OrdinaryIncome.Amount)
	// 10%x11925 + 12%x36550 + 22%x54875 + 24%x93950 + 32%x2700
	// = 1192.50 + 4386 + 12072.50 + 22548 + 864 = 40063.00
	assert.Equal(t, money.Cents(4006300), result.OrdinaryTax.Amount)
	assert.Equal(t, money.Cents(0), result.PreferentialTax.Amount)
	assert.Equal(t, money.Cents(4006300), result.TotalTax.Amount)
}

func TestPreferentialIncomeStackedOnTopOfOrdinary(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	taxableIncome := lit(store, "ti", money.NewFromDollars(200000))
	qualifiedDividends := lit(store, "qd", money.NewFromDollars(50000))
	netCapGain := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, taxableIncome, qualifiedDividends, netCapGain)

	assert.Equal(t, money.NewFromDollars(150000), result.OrdinaryIncome.Amount)
	assert.Equal(t, money.NewFromDollars(50000), result.PreferentialIncome.Amount)
	// Ordinary tax on $150,000: 1192.50 + 4386 + 12072.50 + (46650 x 24% = 11196) = 28847.00
	assert.Equal(t, money.Cents(2884700), result.OrdinaryTax.Amount)
	// $150,000 ordinary stack leaves no room in the 0% tier (top $48,350);
	// all $50,000 of preferential income lands in the 15% tier: $7,500.
	assert.Equal(t, money.NewFromDollars(7500), result.PreferentialTax.Amount)
	assert.Equal(t, money.Cents(2884700+750000), result.TotalTax.Amount)
}

func TestPreferentialIncomeSpansAllThreeRates(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	taxableIncome := lit(store, "ti", money.NewFromDollars(600000))
	qualifiedDividends := lit(store, "qd", money.NewFromDollars(600000))
	netCapGain := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, taxableIncome, qualifiedDividends, netCapGain)

	assert.Equal(t, money.Cents(0), result.OrdinaryIncome.Amount)
	assert.Equal(t, money.NewFromDollars(600000), result.PreferentialIncome.Amount)
	assert.Equal(t, money.Cents(0), result.OrdinaryTax.Amount)
	// 0% on the first $48,350; 15% on $48,350-$533,400 ($485,050 x 15% = $72,757.50);
	// 20% on the remaining $66,600 ($13,320.00). Total $86,077.50.
	assert.Equal(t, money.Cents(8607750), result.PreferentialTax.Amount)
	assert.Equal(t, money.Cents(8607750), result.TotalTax.Amount)
}

func TestPreferentialIncomeCannotExceedTaxableIncome(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	taxableIncome := lit(store, "ti", money.NewFromDollars(10000))
	qualifiedDividends := lit(store, "qd", money.NewFromDollars(5000))
	netCapGain := lit(store, "ncg", money.NewFromDollars(10000))

	result := Compute(store, model, taxableIncome, qualifiedDividends, netCapGain)

	assert.Equal(t, money.NewFromDollars(10000), result.PreferentialIncome.Amount)
	assert.Equal(t, money.Cents(0), result.OrdinaryIncome.Amount)
}
