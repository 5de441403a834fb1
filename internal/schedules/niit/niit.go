// Package niit implements Form 8960, the Net Investment Income Tax: 3.8%
// of the lesser of net investment income or modified AGI above the
// filing-status threshold, structured like addlmedicare's threshold
// compare since Form 8960 shares the same statutory threshold table.
package niit

import (
	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result is Form 8960's tax, flowing to Schedule 2.
type Result struct {
	NetInvestmentIncome money.TracedValue
	Threshold           money.TracedValue
	Excess              money.TracedValue
	Tax                 money.TracedValue
}

// Compute applies 3.8% to min(netInvestmentIncome, magi - threshold). magi
// is modified AGI (ordinary AGI for filers without foreign-earned-income
// exclusions).
func Compute(store *tracer.Store, model *domain.ReturnModel, netInvestmentIncome, magi money.TracedValue) Result {
	niiFloor := store.Put(money.Zero("form8960.niiFloor", "net investment income does not go negative"))
	nii := store.Put(money.MaxV("form8960.nii", netInvestmentIncome, niiFloor))
	threshold := store.Put(money.Literal(constants.NIITThreshold[model.FilingStatus], "form8960.threshold", "filing-status MAGI threshold"))
	excessRaw := store.Put(money.SubV("form8960.excessRaw", magi, threshold))
	excess := store.Put(money.ClampZero("form8960.excess", excessRaw))
	base := store.Put(money.MinV("form8960.base", nii, excess))
	tax := store.Put(money.Pct("form8960.tax", base, constants.NIITRateBps, money.RoundHalfEven))

	return Result{
		NetInvestmentIncome: nii,
		Threshold:           threshold,
		Excess:              excess,
		Tax:                 tax,
	}
}
