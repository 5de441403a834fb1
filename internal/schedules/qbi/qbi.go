// Package qbi implements the Qualified Business Income deduction: Form
// 8995 when taxable income before QBI stays at or under the
// filing-status threshold, Form 8995-A above it with the W-2 wage/UBIA
// limit and the SSTB phase-out.
package qbi

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/schedules/schedulec"
	"github.com/form1040/taxengine/internal/schedules/schedulee"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Source is one QBI-eligible trade or business: a Schedule C business, a
// K-1 passthrough, or a rental that elected the safe harbor.
type Source struct {
	ID      string
	Income  money.TracedValue
	W2Wages money.TracedValue
	UBIA    money.TracedValue
	SSTB    bool
}

// Result is the combined QBI deduction and which form it was computed on.
type Result struct {
	UsedForm8995A   bool
	CombinedQBI     money.TracedValue
	IncomeLimit     money.TracedValue
	Deduction       money.TracedValue
}

// Sources gathers every QBI-eligible income stream from Schedule C
// businesses, K-1 entries, and safe-harbor rentals.
func Sources(store *tracer.Store, model *domain.ReturnModel, businesses []schedulec.BusinessResult, rentals []schedulee.PropertyResult) []Source {
	var sources []Source
	for i, b := range businesses {
		sources = append(sources, Source{
			ID:      fmt.Sprintf("business.%d", i),
			Income:  b.NetProfit,
			W2Wages: store.Put(money.Literal(b.W2WagesPaid, fmt.Sprintf("qbi.business.%d.w2Wages", i), "businesses[].w2WagesPaid")),
			UBIA:    store.Put(money.Literal(b.UBIA, fmt.Sprintf("qbi.business.%d.ubia", i), "businesses[].ubia")),
			SSTB:    b.SSTB,
		})
	}
	for i, k := range model.K1Entries {
		sources = append(sources, Source{
			ID:      fmt.Sprintf("k1.%d", i),
			Income:  store.Put(money.Literal(k.QBIIncome, fmt.Sprintf("qbi.k1.%d.income", i), "k1Entries[].qbiIncome")),
			W2Wages: store.Put(money.Literal(k.W2WagesPaid, fmt.Sprintf("qbi.k1.%d.w2Wages", i), "k1Entries[].w2WagesPaid")),
			UBIA:    store.Put(money.Literal(k.UBIA, fmt.Sprintf("qbi.k1.%d.ubia", i), "k1Entries[].ubia")),
			SSTB:    k.SSTB,
		})
	}
	for i, r := range rentals {
		if !r.QBISafeHarborElected {
			continue
		}
		sources = append(sources, Source{
			ID:      fmt.Sprintf("rental.%d", i),
			Income:  r.NetIncome,
			W2Wages: store.Put(money.Zero(fmt.Sprintf("qbi.rental.%d.w2Wages", i), "rentals carry no W-2 wages under the safe harbor")),
			UBIA:    store.Put(money.Zero(fmt.Sprintf("qbi.rental.%d.ubia", i), "rentals carry no UBIA under the safe harbor")),
			SSTB:    false,
		})
	}
	return sources
}

// Compute dispatches between the simplified and wage-limited paths and
// applies the 20%-of-taxable-income-less-net-capital-gain overall cap.
func Compute(store *tracer.Store, model *domain.ReturnModel, sources []Source, taxableIncomeBeforeQBI, netCapGainAndQualDiv money.TracedValue) Result {
	threshold := constants.QBIThreshold2025[model.FilingStatus]
	usedForm8995A := taxableIncomeBeforeQBI.Amount > threshold

	var combined money.TracedValue
	if !usedForm8995A {
		combined = computeSimplified(store, sources)
	} else {
		combined = computeWageLimited(store, model, sources, taxableIncomeBeforeQBI)
	}

	incomeLessGains := store.Put(money.SubV("qbi.incomeLessCapGains", taxableIncomeBeforeQBI, netCapGainAndQualDiv))
	incomeLessGainsFloored := store.Put(money.ClampZero("qbi.incomeLessCapGainsFloored", incomeLessGains))
	incomeLimit := store.Put(money.Pct("qbi.incomeLimit", incomeLessGainsFloored, constants.QBIDeductionCapBps, money.RoundHalfEven))

	deduction := store.Put(money.MinV("qbi.deduction", combined, incomeLimit))

	return Result{
		UsedForm8995A: usedForm8995A,
		CombinedQBI:   combined,
		IncomeLimit:   incomeLimit,
		Deduction:     deduction,
	}
}

// computeSimplified implements Form 8995: 20% of combined QBI, no wage or
// UBIA limitation, each source's negative component allowed to offset the
// others before the combined total floors at zero.
func computeSimplified(store *tracer.Store, sources []Source) money.TracedValue {
	if len(sources) == 0 {
		return store.Put(money.Zero("qbi.form8995.combined", "no QBI-eligible sources"))
	}
	incomes := make([]money.TracedValue, len(sources))
	for i, s := range sources {
		incomes[i] = s.Income
	}
	combinedIncome := store.Put(money.Sum("qbi.form8995.combinedIncome", incomes...))
	combinedIncomeFloored := store.Put(money.ClampZero("qbi.form8995.combinedIncomeFloored", combinedIncome))
	return store.Put(money.Pct("qbi.form8995.combined", combinedIncomeFloored, constants.QBIDeductionCapBps, money.RoundHalfEven))
}

// computeWageLimited implements Form 8995-A: each source's QBI, W-2 wages,
// and UBIA are phased down by the SSTB applicable percentage (fully
// excluded once taxable income clears the phase-out range), then each
// surviving source's deduction candidate is the lesser of 20% of its QBI
// or the greater of 50% of its W-2 wages and 25% of its W-2 wages plus
// 2.5% of its UBIA; the per-source candidates are summed and floored.
func computeWageLimited(store *tracer.Store, model *domain.ReturnModel, sources []Source, taxableIncomeBeforeQBI money.TracedValue) money.TracedValue {
	phaseOutRange := constants.QBISSTBPhaseOutRange
	if model.FilingStatus == domain.MarriedFilingJointly || model.FilingStatus == domain.QualifyingSurvivingSpouse {
		phaseOutRange *= 2
	}
	threshold := constants.QBIThreshold2025[model.FilingStatus]
	excess := taxableIncomeBeforeQBI.Amount - threshold
	if excess < 0 {
		excess = 0
	}
	remaining := phaseOutRange - excess
	if remaining < 0 {
		remaining = 0
	}

	if len(sources) == 0 {
		return store.Put(money.Zero("qbi.form8995a.combined", "no QBI-eligible sources"))
	}

	var candidates []money.TracedValue
	for _, s := range sources {
		id := "qbi.form8995a." + s.ID
		income, w2Wages, ubia := s.Income, s.W2Wages, s.UBIA
		if s.SSTB {
			if remaining == 0 {
				continue
			}
			income = store.Put(money.Mul(id+".phasedIncome", income, int64(remaining), int64(phaseOutRange), money.RoundHalfEven))
			w2Wages = store.Put(money.Mul(id+".phasedW2", w2Wages, int64(remaining), int64(phaseOutRange), money.RoundHalfEven))
			ubia = store.Put(money.Mul(id+".phasedUbia", ubia, int64(remaining), int64(phaseOutRange), money.RoundHalfEven))
		}

		incomeFloored := store.Put(money.ClampZero(id+".incomeFloored", income))
		qbiLimit := store.Put(money.Pct(id+".qbiLimit", incomeFloored, constants.QBIDeductionCapBps, money.RoundHalfEven))

		wageLimitHalf := store.Put(money.Pct(id+".wageLimitHalf", w2Wages, 5000, money.RoundHalfEven))
		wageLimitQuarter := store.Put(money.Pct(id+".wageLimitQuarter", w2Wages, 2500, money.RoundHalfEven))
		ubiaLimit := store.Put(money.Pct(id+".ubiaLimit", ubia, 250, money.RoundHalfEven))
		wageLimitQuarterPlusUBIA := store.Put(money.Sum(id+".wageLimitQuarterPlusUbia", wageLimitQuarter, ubiaLimit))
		wageLimit := store.Put(money.MaxV(id+".wageLimit", wageLimitHalf, wageLimitQuarterPlusUBIA))

		candidate := store.Put(money.MinV(id+".candidate", qbiLimit, wageLimit))
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return store.Put(money.Zero("qbi.form8995a.combined", "every SSTB source fully phased out"))
	}
	combined := store.Put(money.Sum("qbi.form8995a.combinedRaw", candidates...))
	return store.Put(money.ClampZero("qbi.form8995a.combined", combined))
}
