// Package va implements the Virginia state module: a progressive-bracket
// state plus the MD/VA/DC reciprocity override, encoded as a
// state-specific flag on this module rather than a general cross-state
// rule (reciprocity is bilateral and state-specific by nature).
package va

import (
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/money"
)

const stateCode = "VA"
const maxStateCents = money.Cents(1 << 62 - 1)

// Brackets2025 is a Virginia-proxy progressive ladder, filing-status
// invariant (Virginia does not widen brackets for joint filers).
var Brackets2025 = []states.Bracket{
	{money.NewFromDollars(3000), 200},
	{money.NewFromDollars(5000), 300},
	{money.NewFromDollars(17000), 500},
	{maxStateCents, 575},
}

// StandardDeduction2025 by filing status.
var StandardDeduction2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(8500),
	domain.MarriedFilingSeparately:  money.NewFromDollars(8500),
	domain.HeadOfHousehold:          money.NewFromDollars(8500),
	domain.MarriedFilingJointly:     money.NewFromDollars(17000),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(17000),
}

// Detail is VA's state-specific record.
type Detail struct {
	ReciprocityExempt bool
}

// isReciprocityCommuter reads the "reciprocityResident" flag off the
// return model's state-specific bag: a commuter whose only Virginia
// -source income is wages, and who is a resident of a jurisdiction (MD,
// DC, among others) with a reciprocal-income agreement with Virginia,
// owes no Virginia tax on that income.
func isReciprocityCommuter(config domain.StateReturnConfig) bool {
	if config.StateSpecific == nil {
		return false
	}
	v, ok := config.StateSpecific["reciprocityResident"]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func Module() states.StateModule {
	return states.StateModule{
		StateCode:    stateCode,
		FormLabel:    "Form 760",
		SidebarLabel: "Virginia",
		Compute:      compute,
		ReviewLayout: []states.Section{
			{Title: "Virginia Adjusted Gross Income", Fields: []string{"vaAGI"}},
			{Title: "Virginia Tax", Fields: []string{"vaTaxableIncome", "vaTax"}},
		},
		ReviewResultLines: []states.ResultLine{
			{Label: "VA Taxable Income", NodeID: "form760.vaTaxableIncome"},
			{Label: "VA Tax", NodeID: "form760.vaTax"},
			{Label: "VA Refund/Owed", NodeID: "form760.reconcile"},
		},
	}
}

func compute(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) states.Result {
	ratio := states.Apportionment(config, 2025, 365)
	reciprocityExempt := isReciprocityCommuter(config)

	vaAGI := store.Put(money.Rebind("form760.vaAGI", fed.Line11AGI))
	stdDeduction := store.Put(money.Literal(StandardDeduction2025[model.FilingStatus], "form760.standardDeduction", "VA standard deduction"))
	taxableRaw := store.Put(money.SubV("form760.vaTaxableIncomeFullYearRaw", vaAGI, stdDeduction))
	taxableFullYear := store.Put(money.ClampZero("form760.vaTaxableIncomeFullYear", taxableRaw))
	vaTaxableIncome := store.Put(money.ApplyRatio("form760.vaTaxableIncome", taxableFullYear, ratio))

	var vaTax money.TracedValue
	if reciprocityExempt {
		vaTax = store.Put(money.Zero("form760.vaTax", "reciprocity agreement exempts a commuter's Virginia wage income"))
		report.Info("VA-RECIPROCITY", "state", "Virginia tax zeroed under the MD/VA/DC reciprocal-income agreement for a commuter whose only Virginia-source income is wages.", "Form 760 Instructions")
	} else {
		taxFullYear := states.MarginalTax(store, "form760.tax", Brackets2025, taxableFullYear)
		vaTax = store.Put(money.ApplyRatio("form760.vaTax", taxFullYear, ratio))
	}

	withholding := states.WithholdingForState(store, model, "form760", stateCode)
	totalPayments := store.Put(money.Rebind("form760.totalPayments", withholding))
	overpaid, amountOwed := states.Reconcile(store, "form760.reconcile", vaTax, totalPayments)

	return states.Result{
		StateCode:               stateCode,
		FormLabel:               "Form 760",
		ResidencyType:           config.ResidencyType,
		ApportionmentRatio:      ratio,
		StateAGI:                vaAGI,
		StateTaxableIncome:      vaTaxableIncome,
		StateTax:                vaTax,
		TaxAfterCredits:         vaTax,
		StateWithholding:        withholding,
		TotalPayments:           totalPayments,
		Overpaid:                overpaid,
		AmountOwed:              amountOwed,
		Detail:                  Detail{ReciprocityExempt: reciprocityExempt},
		RequiresIncomeTaxFiling: true,
	}
}
