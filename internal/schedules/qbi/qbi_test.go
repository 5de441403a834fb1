package qbi

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/schedules/schedulec"
	"github.com/form1040/taxengine/internal/schedules/schedulee"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func lit(store *tracer.Store, id string, amount money.Cents) money.TracedValue {
	return store.Put(money.Literal(amount, id, "test"))
}

func TestSimplifiedPathBelowThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	sources := []Source{
		{ID: "b.0", Income: lit(store, "s1", money.NewFromDollars(50000))},
	}
	taxableIncome := lit(store, "ti", money.NewFromDollars(100000))
	netCapGains := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, sources, taxableIncome, netCapGains)

	assert.False(t, result.UsedForm8995A)
	// 20% of $50,000 = $10,000, well under the 20%-of-$100,000 income limit.
	assert.Equal(t, money.NewFromDollars(10000), result.Deduction.Amount)
}

func TestSimplifiedPathFloorsCombinedLossAtZero(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	sources := []Source{
		{ID: "b.0", Income: lit(store, "s1", money.NewFromDollars(-20000))},
		{ID: "b.1", Income: lit(store, "s2", money.NewFromDollars(10000))},
	}
	taxableIncome := lit(store, "ti", money.NewFromDollars(100000))
	netCapGains := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, sources, taxableIncome, netCapGains)

	assert.Equal(t, money.Cents(0), result.Deduction.Amount)
}

func TestIncomeLimitCapsDeduction(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	sources := []Source{
		{ID: "b.0", Income: lit(store, "s1", money.NewFromDollars(50000))},
	}
	taxableIncome := lit(store, "ti", money.NewFromDollars(40000))
	netCapGains := lit(store, "ncg", money.NewFromDollars(10000))

	result := Compute(store, model, sources, taxableIncome, netCapGains)

	// 20% of ($40,000 - $10,000) = $6,000, under the $10,000 QBI-based candidate.
	assert.Equal(t, money.NewFromDollars(6000), result.Deduction.Amount)
}

func TestWageLimitedPathNonSSTBAboveThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	sources := []Source{
		{
			ID:      "b.0",
			Income:  lit(store, "s1", money.NewFromDollars(300000)),
			W2Wages: lit(store, "w1", money.NewFromDollars(100000)),
			UBIA:    lit(store, "u1", money.NewFromDollars(0)),
			SSTB:    false,
		},
	}
	taxableIncome := lit(store, "ti", money.NewFromDollars(400000))
	netCapGains := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, sources, taxableIncome, netCapGains)

	assert.True(t, result.UsedForm8995A)
	// QBI candidate: 20% x $300,000 = $60,000. Wage limit: 50% x $100,000 = $50,000.
	// Lesser of the two is $50,000, under the 20%-of-$400,000 income limit.
	assert.Equal(t, money.NewFromDollars(50000), result.Deduction.Amount)
}

func TestWageLimitedPathSSTBFullyPhasedOutAboveRange(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	sources := []Source{
		{
			ID:      "b.0",
			Income:  lit(store, "s1", money.NewFromDollars(300000)),
			W2Wages: lit(store, "w1", money.NewFromDollars(100000)),
			UBIA:    lit(store, "u1", money.NewFromDollars(0)),
			SSTB:    true,
		},
	}
	// Single threshold $241,950, phase-out range $75,000 -> fully excluded
	// once taxable income reaches $316,950 or more.
	taxableIncome := lit(store, "ti", money.NewFromDollars(400000))
	netCapGains := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, sources, taxableIncome, netCapGains)

	assert.True(t, result.UsedForm8995A)
	assert.Equal(t, money.Cents(0), result.Deduction.Amount)
}

func TestWageLimitedPathSSTBPartiallyPhased(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{FilingStatus: domain.Single}
	sources := []Source{
		{
			ID:      "b.0",
			Income:  lit(store, "s1", money.NewFromDollars(300000)),
			W2Wages: lit(store, "w1", money.NewFromDollars(150000)),
			UBIA:    lit(store, "u1", money.NewFromDollars(0)),
			SSTB:    true,
		},
	}
	// Threshold $241,950, excess $25,000 of the $75,000 range -> 50,000/75,000
	// (2/3) of each figure survives: phased QBI $200,000 (20% = $40,000),
	// phased W-2 wages $100,000 (50% wage limit = $50,000). The lesser of
	// the two candidates, $40,000, wins.
	taxableIncome := lit(store, "ti", money.NewFromDollars(266950))
	netCapGains := store.Put(money.Zero("ncg", "none"))

	result := Compute(store, model, sources, taxableIncome, netCapGains)

	assert.True(t, result.UsedForm8995A)
	assert.Equal(t, money.NewFromDollars(40000), result.Deduction.Amount)
}

func TestSourcesIncludesSafeHarborRentalAndExcludesOthers(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{}
	businesses := []schedulec.BusinessResult{
		{NetProfit: lit(store, "bp", money.NewFromDollars(10000)), W2WagesPaid: 0, UBIA: 0, SSTB: false},
	}
	rentals := []schedulee.PropertyResult{
		{Address: "123 Main St", NetIncome: lit(store, "r0", money.NewFromDollars(20000)), QBISafeHarborElected: true},
		{Address: "456 Oak Ave", NetIncome: lit(store, "r1", money.NewFromDollars(30000)), QBISafeHarborElected: false},
	}

	sources := Sources(store, model, businesses, rentals)

	assert.Len(t, sources, 2)
	assert.Equal(t, "business.0", sources[0].ID)
	assert.Equal(t, "rental.0", sources[1].ID)
	assert.Equal(t, money.NewFromDollars(20000), sources[1].Income.Amount)
}
