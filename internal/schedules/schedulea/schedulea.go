// Package schedulea implements Schedule A itemized deductions: medical
// above a 7.5% AGI floor, SALT capped with a phase-out, mortgage and
// investment interest, and capped charitable contributions, each tracked
// with its own carryforward where the statute allows one.
package schedulea

import (
	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result holds Schedule A's component lines and the total.
type Result struct {
	Line4Medical                money.TracedValue
	Line7SALT                   money.TracedValue
	Line10Interest              money.TracedValue
	InvestmentInterestCarryforward money.TracedValue
	Line14Charity                money.TracedValue
	CharityCashCarryforward      money.TracedValue
	CharityNonCashCarryforward   money.TracedValue
	Line15Casualty               money.TracedValue
	Line16Other                  money.TracedValue
	Line17Total                  money.TracedValue
}

// Compute applies Schedule A. preliminaryAGI is a one-shot forward AGI
// read (medical's floor and the SALT/charity caps never feed back into a
// recomputed AGI). netInvestmentIncome is the figure investment interest
// expense is limited against.
func Compute(store *tracer.Store, model *domain.ReturnModel, preliminaryAGI, netInvestmentIncome money.TracedValue) Result {
	w := model.Itemized
	if w == nil {
		zero := func(id, reason string) money.TracedValue { return store.Put(money.Zero(id, reason)) }
		z := zero("scheduleA.notElected", "itemized deduction not elected")
		return Result{
			Line4Medical: z, Line7SALT: z, Line10Interest: z,
			InvestmentInterestCarryforward: z, Line14Charity: z,
			CharityCashCarryforward: z, CharityNonCashCarryforward: z,
			Line15Casualty: z, Line16Other: z, Line17Total: z,
		}
	}

	medicalTotal := store.Put(money.Input(w.TotalMedicalExpenses, "scheduleA.medicalTotal", "itemized.totalMedicalExpenses"))
	medicalFloor := store.Put(money.Pct("scheduleA.medicalFloor", preliminaryAGI, constants.MedicalDeductionFloorBps, money.RoundHalfEven))
	medicalExcessRaw := store.Put(money.SubV("scheduleA.medicalExcessRaw", medicalTotal, medicalFloor))
	line4 := store.Put(money.ClampZero("scheduleA.line4", medicalExcessRaw))

	line7 := computeSALT(store, model, w, preliminaryAGI)

	line10, investmentCarryforward := computeInterest(store, model, w, netInvestmentIncome)

	line14, cashCarryforward, nonCashCarryforward := computeCharity(store, w, preliminaryAGI)

	line15 := store.Put(money.Input(w.CasualtyTheftLoss, "scheduleA.line15", "itemized.casualtyTheftLoss"))
	line16 := store.Put(money.Input(w.OtherItemized, "scheduleA.line16", "itemized.otherItemized"))

	line17 := store.Put(money.Sum("scheduleA.line17", line4, line7, line10, line14, line15, line16))

	return Result{
		Line4Medical:                   line4,
		Line7SALT:                      line7,
		Line10Interest:                 line10,
		InvestmentInterestCarryforward: investmentCarryforward,
		Line14Charity:                  line14,
		CharityCashCarryforward:        cashCarryforward,
		CharityNonCashCarryforward:     nonCashCarryforward,
		Line15Casualty:                 line15,
		Line16Other:                    line16,
		Line17Total:                    line17,
	}
}

// computeSALT sums the state/local tax boxes and applies the $40,000 cap
// with its AGI-based phase-out.
func computeSALT(store *tracer.Store, model *domain.ReturnModel, w *domain.ItemizedWorksheet, agi money.TracedValue) money.TracedValue {
	stateTax := w.StateIncomeTaxPaid
	if w.StateSalesTaxPaid > stateTax {
		stateTax = w.StateSalesTaxPaid
	}
	line5a := store.Put(money.Literal(stateTax, "scheduleA.line5a", "greater of itemized.stateIncomeTaxPaid or itemized.stateSalesTaxPaid"))
	line5b := store.Put(money.Input(w.RealEstateTaxesPaid, "scheduleA.line5b", "itemized.realEstateTaxesPaid"))
	line5c := store.Put(money.Input(w.PersonalPropertyTaxes, "scheduleA.line5c", "itemized.personalPropertyTaxes"))
	line5e := store.Put(money.Sum("scheduleA.line5e", line5a, line5b, line5c))

	cap := constants.SALTCap2025
	floor := constants.SALTFloor2025
	phaseOutThreshold := constants.SALTPhaseOutThreshold
	if model.FilingStatus == domain.MarriedFilingSeparately {
		cap = constants.SALTCap2025MFS
		floor = constants.SALTFloor2025MFS
		phaseOutThreshold = constants.SALTPhaseOutThresholdMFS
	}
	capLit := store.Put(money.Literal(cap, "scheduleA.saltCap", "statutory SALT cap before phase-out"))

	phaseOutThresholdLit := store.Put(money.Literal(phaseOutThreshold, "scheduleA.saltPhaseOutThreshold", "SALT cap phase-out AGI threshold"))
	excessAGIRaw := store.Put(money.SubV("scheduleA.saltExcessAGIRaw", agi, phaseOutThresholdLit))
	excessAGI := store.Put(money.ClampZero("scheduleA.saltExcessAGI", excessAGIRaw))
	reduction := store.Put(money.Pct("scheduleA.saltCapReduction", excessAGI, constants.SALTPhaseOutRateBps, money.RoundHalfEven))
	reducedCapRaw := store.Put(money.SubV("scheduleA.saltReducedCapRaw", capLit, reduction))
	floorLit := store.Put(money.Literal(floor, "scheduleA.saltFloor", "SALT cap phase-out floor"))
	effectiveCap := store.Put(money.MaxV("scheduleA.saltEffectiveCap", reducedCapRaw, floorLit))

	return store.Put(money.MinV("scheduleA.line7", line5e, effectiveCap))
}

// computeInterest applies post-TCJA mortgage-debt proration when the
// principal is known and exceeds the limit, and caps investment interest
// (current year plus any disallowed amount carried forward from the
// prior year) at net investment income, with the excess carried forward
// again.
func computeInterest(store *tracer.Store, model *domain.ReturnModel, w *domain.ItemizedWorksheet, netInvestmentIncome money.TracedValue) (total, carryforward money.TracedValue) {
	limit := constants.MortgageDebtLimit[model.FilingStatus]

	var mortgageInterest money.TracedValue
	if w.MortgagePrincipalUnpaid == nil {
		mortgageInterest = store.Put(money.Input(w.HomeMortgageInterest, "scheduleA.mortgageInterest", "itemized.homeMortgageInterest, principal unknown, passed through"))
	} else if principal := *w.MortgagePrincipalUnpaid; principal <= limit {
		mortgageInterest = store.Put(money.Input(w.HomeMortgageInterest, "scheduleA.mortgageInterest", "itemized.homeMortgageInterest, principal within limit"))
	} else {
		rawInterest := store.Put(money.Literal(w.HomeMortgageInterest, "scheduleA.mortgageInterestRaw", "itemized.homeMortgageInterest before proration"))
		ratio := money.NewRatio(int64(limit), int64(principal))
		mortgageInterest = store.Put(money.ApplyRatio("scheduleA.mortgageInterest", rawInterest, ratio))
	}

	investmentCurrent := store.Put(money.Input(w.InvestmentInterestPaid, "scheduleA.investmentInterestRaw", "itemized.investmentInterestPaid"))
	priorCarryforward := store.Put(money.Literal(model.PriorYearInvestmentInterestCarryforward, "scheduleA.investmentInterestPriorCarryforward", "prior-year disallowed investment interest carryforward"))
	investmentRaw := store.Put(money.Sum("scheduleA.investmentInterestTotal", investmentCurrent, priorCarryforward))
	investmentAllowed := store.Put(money.MinV("scheduleA.investmentInterestAllowed", investmentRaw, netInvestmentIncome))
	carryforward = store.Put(money.SubV("scheduleA.investmentInterestCarryforward", investmentRaw, investmentAllowed))

	total = store.Put(money.Sum("scheduleA.line10", mortgageInterest, investmentAllowed))
	return total, carryforward
}

// computeCharity caps cash contributions at 60% AGI and non-cash at 30%
// AGI, tracking each excess as a carryforward (not automatically applied
// to a future return).
func computeCharity(store *tracer.Store, w *domain.ItemizedWorksheet, agi money.TracedValue) (total, cashCarryforward, nonCashCarryforward money.TracedValue) {
	cashRaw := store.Put(money.Input(w.CashCharitableContributions, "scheduleA.cashRaw", "itemized.cashCharitableContributions"))
	cashCap := store.Put(money.Pct("scheduleA.cashCap", agi, constants.CharityCashCapBps, money.RoundHalfEven))
	cashAllowed := store.Put(money.MinV("scheduleA.cashAllowed", cashRaw, cashCap))
	cashCarryforward = store.Put(money.SubV("scheduleA.cashCarryforward", cashRaw, cashAllowed))

	nonCashRaw := store.Put(money.Input(w.NonCashCharitableContributions, "scheduleA.nonCashRaw", "itemized.nonCashCharitableContributions"))
	nonCashCap := store.Put(money.Pct("scheduleA.nonCashCap", agi, constants.CharityNonCashCapBps, money.RoundHalfEven))
	nonCashAllowed := store.Put(money.MinV("scheduleA.nonCashAllowed", nonCashRaw, nonCashCap))
	nonCashCarryforward = store.Put(money.SubV("scheduleA.nonCashCarryforward", nonCashRaw, nonCashAllowed))

	total = store.Put(money.Sum("scheduleA.line14", cashAllowed, nonCashAllowed))
	return total, cashCarryforward, nonCashCarryforward
}
