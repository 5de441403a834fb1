// Package socialsecurity implements the Social Security benefits
// taxability worksheet: a three-tier formula applied uniformly across
// filing statuses, with a dedicated branch for married-filing-separately
// taxpayers who lived apart from their spouse all year.
package socialsecurity

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result holds the worksheet's taxable-benefits output plus which tier
// applied, for explainability and validation (negative net benefits flag).
type Result struct {
	GrossBenefits   money.TracedValue
	CombinedIncome  money.TracedValue
	Tier            int
	TaxableBenefits money.TracedValue
	NegativeBenefitsFlag bool
}

// Compute applies the worksheet. otherAGI is every other AGI component
// (wages, interest, etc, excluding Social Security); taxExemptInterest is
// Form 1040 line 2a tax-exempt interest.
func Compute(store *tracer.Store, model *domain.ReturnModel, otherAGI, taxExemptInterest money.TracedValue) Result {
	var grossTerms []money.TracedValue
	negativeFlag := false
	for i, stmt := range model.SocialSecurityStatements {
		v := store.Put(money.Literal(stmt.Box5NetBenefits, benefitsNodeID(i), "SSA-1099 box 5 net benefits"))
		if stmt.Box5NetBenefits < 0 {
			negativeFlag = true
		}
		grossTerms = append(grossTerms, v)
	}
	gross := store.Put(money.Sum("socialSecurity.grossBenefits", grossTerms...))
	if gross.Amount < 0 || negativeFlag {
		zero := store.Put(money.Zero("socialSecurity.taxableBenefits", "negative net benefits, taxable amount is zero"))
		return Result{GrossBenefits: gross, CombinedIncome: otherAGI, Tier: 0, TaxableBenefits: zero, NegativeBenefitsFlag: true}
	}

	halfBenefits := store.Put(money.Mul("socialSecurity.halfBenefits", gross, 1, 2, money.RoundHalfEven))
	combined := store.Put(money.Sum("socialSecurity.combinedIncome", otherAGI, halfBenefits, taxExemptInterest))

	th := thresholdsFor(model)
	base := store.Put(money.Literal(th.Base, "socialSecurity.baseAmount", "filing-status base amount"))
	additional := store.Put(money.Literal(th.Additional, "socialSecurity.additionalAmount", "filing-status additional amount"))

	if combined.Amount <= base.Amount {
		zero := store.Put(money.Zero("socialSecurity.taxableBenefits", "combined income at or below base amount"))
		return Result{GrossBenefits: gross, CombinedIncome: combined, Tier: 0, TaxableBenefits: zero}
	}

	excessOverBase := store.Put(money.SubV("socialSecurity.excessOverBase", combined, base))
	tier1Candidate := store.Put(money.Mul("socialSecurity.tier1Candidate", excessOverBase, 1, 2, money.RoundHalfEven))
	tier1Max := store.Put(money.MinV("socialSecurity.tier1Max", tier1Candidate, halfBenefits))

	if combined.Amount <= additional.Amount {
		taxable := store.Put(money.Rebind("socialSecurity.taxableBenefits", tier1Max))
		return Result{GrossBenefits: gross, CombinedIncome: combined, Tier: 1, TaxableBenefits: taxable}
	}

	excessOverAdditional := store.Put(money.SubV("socialSecurity.excessOverAdditional", combined, additional))
	tier2Raw := store.Put(money.Pct("socialSecurity.tier2Raw", excessOverAdditional, 8500, money.RoundHalfEven))
	tier2Candidate := store.Put(money.Sum("socialSecurity.tier2Candidate", tier2Raw, tier1Max))
	eightyFivePctBenefits := store.Put(money.Pct("socialSecurity.eightyFivePctBenefits", gross, 8500, money.RoundHalfEven))
	taxable := store.Put(money.MinV("socialSecurity.taxableBenefits", tier2Candidate, eightyFivePctBenefits))

	return Result{GrossBenefits: gross, CombinedIncome: combined, Tier: 2, TaxableBenefits: taxable}
}

func benefitsNodeID(i int) string {
	return fmt.Sprintf("socialSecurity.statement.%d", i)
}

func thresholdsFor(model *domain.ReturnModel) constants.SSThresholds {
	if model.FilingStatus == domain.MarriedFilingSeparately && model.MFSLivedApartAllYear {
		return constants.SSThresholdsMFSLivedApart
	}
	return constants.SSThresholds2025[model.FilingStatus]
}
