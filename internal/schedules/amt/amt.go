// Package amt implements Form 6251, the Alternative Minimum Tax (spec
// §4.10): AMTI is regular taxable income plus preference items, reduced by
// a phased-out exemption, taxed on a 26%/28% ladder, and compared against
// regular tax.
package amt

import (
	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result holds Form 6251's AMTI, exemption, tentative minimum tax, and the
// AMT itself (flowing to Schedule 2 when positive).
type Result struct {
	AMTI                  money.TracedValue
	Exemption              money.TracedValue
	ExemptionPhaseOut      money.TracedValue
	TentativeMinimumTax    money.TracedValue
	AMT                    money.TracedValue
	Triggered              bool
}

// Compute applies Form 6251. taxableIncome is Form 1040 line 15; saltAddback
// is the itemized-deduction SALT amount actually claimed (zero for standard
// deduction filers, since there is nothing to add back); regularTax is
// Form 1040 line 16 (plus Schedule D/QDCG preferential-rate tax, already
// folded in by the caller).
func Compute(store *tracer.Store, model *domain.ReturnModel, taxableIncome, saltAddback, regularTax money.TracedValue) Result {
	otherPreferences := store.Put(money.Literal(model.OtherAMTPreferenceItems, "form6251.otherPreferences", "return model otherAmtPreferenceItems"))
	withSalt := store.Put(money.Sum("form6251.withSaltAddback", taxableIncome, saltAddback))
	amti := store.Put(money.Sum("form6251.amti", withSalt, otherPreferences))

	exemptionBase := store.Put(money.Literal(constants.AMTExemption2025[model.FilingStatus], "form6251.exemptionBase", "filing-status AMT exemption"))
	phaseOutThreshold := store.Put(money.Literal(constants.AMTExemptionPhaseOutThreshold[model.FilingStatus], "form6251.phaseOutThreshold", "filing-status exemption phase-out threshold"))
	excessOverThreshold := store.Put(money.SubV("form6251.excessOverThreshold", amti, phaseOutThreshold))
	excessClamped := store.Put(money.ClampZero("form6251.excessClamped", excessOverThreshold))
	phaseOutRaw := store.Put(money.Pct("form6251.phaseOutRaw", excessClamped, constants.AMTExemptionPhaseOutRateBps, money.RoundHalfEven))
	phaseOut := store.Put(money.MinV("form6251.phaseOut", phaseOutRaw, exemptionBase))
	exemption := store.Put(money.SubV("form6251.exemption", exemptionBase, phaseOut))

	base := store.Put(money.SubV("form6251.base", amti, exemption))
	baseClamped := store.Put(money.ClampZero("form6251.baseClamped", base))

	threshold28 := store.Put(money.Literal(constants.AMT28PercentThreshold[model.FilingStatus], "form6251.threshold28", "26%/28% bracket breakpoint"))
	lowerTier := store.Put(money.MinV("form6251.lowerTier", baseClamped, threshold28))
	upperRaw := store.Put(money.SubV("form6251.upperRaw", baseClamped, threshold28))
	upperTier := store.Put(money.ClampZero("form6251.upperTier", upperRaw))

	tax26 := store.Put(money.Pct("form6251.tax26", lowerTier, constants.AMT26PercentRateBps, money.RoundHalfEven))
	tax28 := store.Put(money.Pct("form6251.tax28", upperTier, constants.AMT28PercentRateBps, money.RoundHalfEven))
	tmt := store.Put(money.Sum("form6251.tmt", tax26, tax28))

	amtRaw := store.Put(money.SubV("form6251.amtRaw", tmt, regularTax))
	amount := store.Put(money.ClampZero("form6251.amt", amtRaw))

	return Result{
		AMTI:                amti,
		Exemption:           exemption,
		ExemptionPhaseOut:   phaseOut,
		TentativeMinimumTax: tmt,
		AMT:                 amount,
		Triggered:           amount.Amount > 0,
	}
}
