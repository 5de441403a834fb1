// Package ca implements the California state module: a
// progressive-bracket state with its own standard deduction and a
// nonrefundable personal/dependent exemption credit, independent of the
// federal itemized-or-standard election.
package ca

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/money"
)

const stateCode = "CA"

// Brackets2025 is California's progressive bracket ladder. Figures are
// representative 2025 single/MFS-filer rungs, not a literal Franchise
// Tax Board publication; the bracket-walk mechanics
// (internal/states.MarginalTax) are what this module exercises.
var Brackets2025 = map[domain.FilingStatus][]states.Bracket{
	domain.Single: {
		{money.NewFromDollars(10412), 100},
		{money.NewFromDollars(24684), 200},
		{money.NewFromDollars(38959), 400},
		{money.NewFromDollars(54081), 600},
		{money.NewFromDollars(68350), 800},
		{money.NewFromDollars(349137), 930},
		{money.NewFromDollars(418961), 1030},
		{money.NewFromDollars(698271), 1130},
		{maxStateCents, 1230},
	},
}

// maxStateCents stands in for "no upper bound" on each state's top
// bracket, the same role constants.MaxCents plays in the federal ladder.
const maxStateCents = money.Cents(1 << 62 - 1)

func init() {
	Brackets2025[domain.MarriedFilingSeparately] = Brackets2025[domain.Single]
	Brackets2025[domain.HeadOfHousehold] = Brackets2025[domain.Single]
	// MFJ/QW doubles every single-filer breakpoint.
	mfj := make([]states.Bracket, len(Brackets2025[domain.Single]))
	for i, b := range Brackets2025[domain.Single] {
		mfj[i] = states.Bracket{UpTo: b.UpTo * 2, RateBps: b.RateBps}
	}
	Brackets2025[domain.MarriedFilingJointly] = mfj
	Brackets2025[domain.QualifyingSurvivingSpouse] = mfj
}

// StandardDeduction2025 by filing status.
var StandardDeduction2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(5540),
	domain.MarriedFilingSeparately:  money.NewFromDollars(5540),
	domain.HeadOfHousehold:          money.NewFromDollars(11080),
	domain.MarriedFilingJointly:     money.NewFromDollars(11080),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(11080),
}

// ExemptionCredit2025 is the nonrefundable personal exemption credit;
// PerDependent applies once per dependent claimed.
const (
	ExemptionCreditSingle      = money.Cents(15400)  // $154
	ExemptionCreditMarriedOrHOH = money.Cents(30800) // $308
	ExemptionCreditPerDependent = money.Cents(46100) // $461
)

// Detail is CA's state-specific record, populating the Result.Detail
// sum-type member with this state's own compute shape.
type Detail struct {
	ExemptionCredit money.TracedValue
}

// Module returns the registered CA StateModule.
func Module() states.StateModule {
	return states.StateModule{
		StateCode:    stateCode,
		FormLabel:    "Form 540",
		SidebarLabel: "California",
		Compute:      compute,
		ReviewLayout: []states.Section{
			{Title: "California Adjustments", Fields: []string{"caAGI"}},
			{Title: "California Tax", Fields: []string{"caTaxableIncome", "caTax", "exemptionCredit"}},
		},
		ReviewResultLines: []states.ResultLine{
			{Label: "CA Taxable Income", NodeID: "form540.caTaxableIncome"},
			{Label: "CA Tax", NodeID: "form540.caTax"},
			{Label: "CA Refund/Owed", NodeID: "form540.reconcile"},
		},
	}
}

func compute(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) states.Result {
	ratio := states.Apportionment(config, 2025, 365)

	caAGI := store.Put(money.Rebind("form540.caAGI", fed.Line11AGI))
	stdDeduction := store.Put(money.Literal(StandardDeduction2025[model.FilingStatus], "form540.standardDeduction", "CA standard deduction"))
	taxableRaw := store.Put(money.SubV("form540.caTaxableIncomeRaw", caAGI, stdDeduction))
	taxableFullYear := store.Put(money.ClampZero("form540.caTaxableIncomeFullYear", taxableRaw))
	caTaxableIncome := store.Put(money.ApplyRatio("form540.caTaxableIncome", taxableFullYear, ratio))

	caTaxFullYear := states.MarginalTax(store, "form540.tax", Brackets2025[model.FilingStatus], taxableFullYear)
	caTax := store.Put(money.ApplyRatio("form540.caTax", caTaxFullYear, ratio))

	married := model.FilingStatus == domain.MarriedFilingJointly || model.FilingStatus == domain.QualifyingSurvivingSpouse || model.FilingStatus == domain.HeadOfHousehold
	exemptionPer := ExemptionCreditSingle
	if married {
		exemptionPer = ExemptionCreditMarriedOrHOH
	}
	exemption := store.Put(money.Literal(exemptionPer, "form540.personalExemption", "CA personal exemption credit"))
	var depTerms []money.TracedValue
	for i := range model.Dependents {
		id := fmt.Sprintf("form540.dependentExemption.%d", i)
		depTerms = append(depTerms, store.Put(money.Literal(ExemptionCreditPerDependent, id, "CA dependent exemption credit")))
	}
	dependentExemptions := store.Put(money.Sum("form540.dependentExemptionTotal", depTerms...))
	exemptionCredit := store.Put(money.Sum("form540.exemptionCredit", exemption, dependentExemptions))

	taxAfterCreditsRaw := store.Put(money.SubV("form540.taxAfterCreditsRaw", caTax, exemptionCredit))
	taxAfterCredits := store.Put(money.ClampZero("form540.taxAfterCredits", taxAfterCreditsRaw))

	withholding := states.WithholdingForState(store, model, "form540", stateCode)
	totalPayments := store.Put(money.Rebind("form540.totalPayments", withholding))
	overpaid, amountOwed := states.Reconcile(store, "form540.reconcile", taxAfterCredits, totalPayments)

	if config.ResidencyType == domain.ResidencyPartYear {
		report.Info("CA-PARTYEAR", "state", "California part-year apportionment applied by days-in-state ratio to taxable income and tax.", "Form 540NR")
	}

	return states.Result{
		StateCode:               stateCode,
		FormLabel:               "Form 540",
		ResidencyType:           config.ResidencyType,
		ApportionmentRatio:      ratio,
		StateAGI:                caAGI,
		StateTaxableIncome:      caTaxableIncome,
		StateTax:                caTax,
		TaxAfterCredits:         taxAfterCredits,
		StateWithholding:        withholding,
		TotalPayments:           totalPayments,
		Overpaid:                overpaid,
		AmountOwed:              amountOwed,
		Detail:                  Detail{ExemptionCredit: exemptionCredit},
		RequiresIncomeTaxFiling: true,
	}
}
