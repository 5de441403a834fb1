package validation

import (
	"fmt"
	"time"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
)

// ValidateFederal runs the non-blocking data-anomaly checks against
// model and its computed federal result, returning a fresh report. It
// never mutates model or fed and never fails the compute; every rule
// here is informational or a warning.
func ValidateFederal(model *domain.ReturnModel, fed orchestrator.Result) *Report {
	r := NewReport()

	checkSocialSecurityStatements(r, model)
	checkNegativeNetBenefits(r, fed)
	checkMFSLivedApart(r, model)
	checkSeniorDeductionNotice(r, model)
	checkDependentFilerLimitations(r, model)
	checkEarlyWithdrawals(r, model)
	checkMiscWithoutScheduleC(r, model)
	checkQBISSTBPhaseOut(r, fed)
	checkK1QualifiedDividends(r, model)
	checkForeignTaxCarryover(r, fed)
	checkUnsupportedScenarios(r, model)

	return r
}

// checkSocialSecurityStatements flags SSA-1099s whose box 3 minus box 4
// disagrees with the reported box 5 net figure.
func checkSocialSecurityStatements(r *Report, model *domain.ReturnModel) {
	for i, s := range model.SocialSecurityStatements {
		expected := s.Box3GrossBenefits - s.Box4BenefitsRepaid
		if expected != s.Box5NetBenefits {
			r.Warn("SSA-BOX5-MISMATCH", "income",
				fmt.Sprintf("SSA-1099 #%d: box 3 ($%d) minus box 4 ($%d) does not equal the reported box 5 net benefits ($%d).",
					i, s.Box3GrossBenefits, s.Box4BenefitsRepaid, s.Box5NetBenefits),
				"Form SSA-1099")
		}
	}
}

// checkNegativeNetBenefits flags a negative gross-benefits figure, which
// the Social Security worksheet treats as zero taxable.
func checkNegativeNetBenefits(r *Report, fed orchestrator.Result) {
	if fed.SocialSecurity.GrossBenefits.Amount < 0 {
		r.Warn("SSA-NEGATIVE-BENEFITS", "income",
			"Total Social Security benefits (box 5 net) is negative; the worksheet reports zero taxable benefits rather than a negative figure.",
			"Social Security Benefits Worksheet")
	}
}

// checkMFSLivedApart notes when a married-filing-separately return omits
// the lived-apart-all-year election, since that flag selects which base
// amount the Social Security worksheet applies.
func checkMFSLivedApart(r *Report, model *domain.ReturnModel) {
	if model.FilingStatus == domain.MarriedFilingSeparately && !model.MFSLivedApartAllYear && len(model.SocialSecurityStatements) > 0 {
		r.Info("MFS-SS-LIVED-APART", "income",
			"Married filing separately with Social Security benefits reported and mfsLivedApartAllYear not set; confirm whether the taxpayer lived apart from their spouse all year, since that changes the taxable-benefits base amount from $0 to $25,000.",
			"Social Security Benefits Worksheet")
	}
}

// checkSeniorDeductionNotice surfaces the OBBBA additional senior
// deduction as an informational note when either filer is 65 or older,
// since this engine applies only the pre-existing age/blind standard
// -deduction add-on and does not model the separate OBBBA senior
// deduction.
func checkSeniorDeductionNotice(r *Report, model *domain.ReturnModel) {
	if model.AgeBlind.TaxpayerAge65OrOlder || model.AgeBlind.SpouseAge65OrOlder {
		r.Info("SENIOR-DEDUCTION-OBBBA", "deduction",
			"One Big Beautiful Bill Act introduced an additional temporary senior deduction for filers 65 and older beyond the standard age/blind add-on; this engine applies only the pre-existing standard-deduction age/blind add-on and does not model the OBBBA senior deduction.",
			"")
	}
}

// checkDependentFilerLimitations notes the dependent-filer standard
// -deduction floor was applied, since that figure differs from the
// ordinary filing-status amount.
func checkDependentFilerLimitations(r *Report, model *domain.ReturnModel) {
	if model.CanBeClaimedAsDependent {
		r.Info("DEPENDENT-FILER-LIMITATION", "deduction",
			"Taxpayer can be claimed as a dependent; the standard deduction is limited to the greater of $1,350 or earned income plus $450, not to exceed the normal filing-status amount.",
			"")
	}
}

// checkEarlyWithdrawals flags 1099-R distribution codes that indicate an
// early withdrawal, since this engine does not compute Form 5329's 10%
// additional tax.
func checkEarlyWithdrawals(r *Report, model *domain.ReturnModel) {
	for i, d := range model.RetirementDistributions {
		if d.Box7DistributionCode == "1" {
			r.Warn("EARLY-WITHDRAWAL-CODE-1", "income",
				fmt.Sprintf("Retirement distribution #%d from %s carries distribution code 1 (early distribution, no known exception); this engine does not compute Form 5329's additional 10%% tax.", i, d.PayerName),
				"Form 1099-R box 7")
		}
	}
}

// checkMiscWithoutScheduleC flags 1099-MISC box 3 income above $600 when
// no Schedule C business is present, since that combination often
// indicates self-employment income that should have been reported on a
// 1099-NEC / Schedule C instead.
func checkMiscWithoutScheduleC(r *Report, model *domain.ReturnModel) {
	const threshold domain.Cents = 60000 // $600.00
	if len(model.Businesses) > 0 {
		return
	}
	for i, m := range model.MiscellaneousStatements {
		if m.Box3OtherIncome > threshold {
			r.Warn("MISC-BOX3-NO-SCHEDULE-C", "income",
				fmt.Sprintf("1099-MISC #%d from %s reports box 3 other income of $%d.%02d with no Schedule C business on the return; confirm this isn't self-employment income.",
					i, m.PayerName, m.Box3OtherIncome/100, m.Box3OtherIncome%100),
				"Form 1099-MISC box 3")
		}
	}
}

// checkQBISSTBPhaseOut notes when the Form 8995-A path was used, since
// an SSTB source above the full phase-out range receives a conservative
// $0 QBI deduction in the absence of per-business W-2 wage/UBIA detail.
func checkQBISSTBPhaseOut(r *Report, fed orchestrator.Result) {
	if fed.QBI.UsedForm8995A {
		r.Info("QBI-SSTB-8995A", "credit",
			"Taxable income before QBI exceeds the Form 8995 simplified-path threshold; Form 8995-A's W-2 wage/UBIA limitation applies, and any specified-service-trade-or-business source above the phase-out range receives a conservative $0 QBI deduction absent explicit per-business wage and UBIA detail.",
			"Form 8995-A")
	}
}

// checkK1QualifiedDividends documents the conservative K-1 box 6a
// treatment: this engine never infers qualification for a K-1's reported
// qualified-dividend figure, treating it as non-qualified since the
// model carries no holding-period data for passthrough dividends.
func checkK1QualifiedDividends(r *Report, model *domain.ReturnModel) {
	for i, k := range model.K1Entries {
		if k.QualifiedDividends > 0 {
			r.Info("K1-QUALIFIED-DIVIDENDS-CONSERVATIVE", "income",
				fmt.Sprintf("K-1 #%d from %s reports box 6a qualified dividends of $%d.%02d; this engine conservatively treats K-1 qualified dividends as ordinary (non-qualified) absent holding-period data.",
					i, k.EntityName, k.QualifiedDividends/100, k.QualifiedDividends%100),
				"Schedule K-1 box 6a")
		}
	}
}

// checkForeignTaxCarryover notes that Form 1116's excess-limitation
// carryover to future/prior years is not modeled, whenever the computed
// credit was capped below the total foreign tax paid.
func checkForeignTaxCarryover(r *Report, fed orchestrator.Result) {
	if fed.ForeignTax.Credit.Amount > 0 && fed.ForeignTax.Credit.Amount < fed.ForeignTax.ForeignTaxPaid.Amount {
		r.Info("FOREIGN-TAX-CARRYOVER-NOT-MODELED", "credit",
			"The foreign tax credit was limited below the total foreign tax paid; Form 1116's one-year-back/ten-year-forward carryover of the excess is not modeled.",
			"Form 1116")
	}
}

// checkUnsupportedScenarios enumerates return features this engine
// treats conservatively or does not model at all: the passive-activity
// loss rules for a rental without active participation, general-category
// foreign tax credit detail, and a qualifying-child dependent aged 17 or
// older who is a student under 24 (no Child Tax Credit).
func checkUnsupportedScenarios(r *Report, model *domain.ReturnModel) {
	for _, rental := range model.Rentals {
		if !rental.ActivelyParticipates {
			r.Info("PAL-CARRYFORWARD-NOT-PERSISTED", "rental",
				"A rental property is marked as not actively participating; this engine does not apply Form 8582's passive-activity-loss limitation and does not persist an unused-loss carryforward to future returns.",
				"Form 8582")
			break
		}
	}
	if model.Credits.ForeignTaxPaidOther > 0 {
		r.Info("FOREIGN-TAX-GENERAL-CATEGORY-UNSUPPORTED", "credit",
			"Foreign tax paid outside a 1099-DIV is present; this engine does not distinguish passive from general-category foreign-source income on Form 1116.",
			"Form 1116")
	}
	yearEnd := constants.TaxYearEnd
	ageAtYearEnd := func(dob time.Time) int {
		years := yearEnd.Year() - dob.Year()
		if dob.Month() > yearEnd.Month() || (dob.Month() == yearEnd.Month() && dob.Day() > yearEnd.Day()) {
			years--
		}
		return years
	}
	for i, d := range model.Dependents {
		if d.DateOfBirth.IsZero() {
			continue
		}
		if d.Relationship.IsQualifyingChildRelation() && ageAtYearEnd(d.DateOfBirth) >= 17 && d.IsStudentUnder24 {
			r.Info("DEPENDENT-OLDER-QC-NOT-CTC", "credit",
				fmt.Sprintf("Dependent #%d is 17 or older at year end; even as a full-time student under 24 they no longer qualify for the Child Tax Credit, only the $500 Credit for Other Dependents.", i),
				"Form 8812")
		}
	}
}
