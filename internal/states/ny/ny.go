// Package ny implements the New York state module: a progressive-bracket
// state with its own standard deduction table and a simple
// addition/subtraction AGI adjustment set.
package ny

import (
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/money"
)

const stateCode = "NY"
const maxStateCents = money.Cents(1 << 62 - 1)

// Brackets2025 is a New York-proxy progressive ladder, grounded in the
// same internal/states.MarginalTax bracket-walk CA uses, with NY's own
// figures and rungs.
var Brackets2025 = map[domain.FilingStatus][]states.Bracket{
	domain.Single: {
		{money.NewFromDollars(8500), 400},
		{money.NewFromDollars(11700), 450},
		{money.NewFromDollars(13900), 525},
		{money.NewFromDollars(80650), 550},
		{money.NewFromDollars(215400), 600},
		{money.NewFromDollars(1077550), 685},
		{maxStateCents, 882},
	},
}

func init() {
	Brackets2025[domain.HeadOfHousehold] = Brackets2025[domain.Single]
	mfj := make([]states.Bracket, len(Brackets2025[domain.Single]))
	for i, b := range Brackets2025[domain.Single] {
		mfj[i] = states.Bracket{UpTo: b.UpTo * 2, RateBps: b.RateBps}
	}
	Brackets2025[domain.MarriedFilingJointly] = mfj
	Brackets2025[domain.QualifyingSurvivingSpouse] = mfj
	Brackets2025[domain.MarriedFilingSeparately] = Brackets2025[domain.Single]
}

// StandardDeduction2025 by filing status.
var StandardDeduction2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(8000),
	domain.MarriedFilingSeparately:  money.NewFromDollars(8000),
	domain.HeadOfHousehold:          money.NewFromDollars(11200),
	domain.MarriedFilingJointly:     money.NewFromDollars(16050),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(16050),
}

// Detail is NY's state-specific record.
type Detail struct {
	Additions    money.TracedValue
	Subtractions money.TracedValue
}

func Module() states.StateModule {
	return states.StateModule{
		StateCode:    stateCode,
		FormLabel:    "Form IT-201",
		SidebarLabel: "New York",
		Compute:      compute,
		ReviewLayout: []states.Section{
			{Title: "New York Adjustments", Fields: []string{"nyAGI"}},
			{Title: "New York Tax", Fields: []string{"nyTaxableIncome", "nyTax"}},
		},
		ReviewResultLines: []states.ResultLine{
			{Label: "NY Taxable Income", NodeID: "it201.nyTaxableIncome"},
			{Label: "NY Tax", NodeID: "it201.nyTax"},
			{Label: "NY Refund/Owed", NodeID: "it201.reconcile"},
		},
	}
}

func compute(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) states.Result {
	ratio := states.Apportionment(config, 2025, 365)

	// NY adds back federally tax-exempt interest from non-NY municipal
	// bonds and subtracts federally taxable Social Security benefits.
	additions := store.Put(money.Rebind("it201.additions", fed.Line2aTaxExemptInterest))
	subtractions := store.Put(money.Rebind("it201.subtractions", fed.Line6bTaxableSocialSecurity))

	agiStep1 := store.Put(money.Sum("it201.agiStep1", fed.Line11AGI, additions))
	nyAGI := store.Put(money.SubV("it201.nyAGI", agiStep1, subtractions))

	stdDeduction := store.Put(money.Literal(StandardDeduction2025[model.FilingStatus], "it201.standardDeduction", "NY standard deduction"))
	taxableRaw := store.Put(money.SubV("it201.nyTaxableIncomeFullYearRaw", nyAGI, stdDeduction))
	taxableFullYear := store.Put(money.ClampZero("it201.nyTaxableIncomeFullYear", taxableRaw))
	nyTaxableIncome := store.Put(money.ApplyRatio("it201.nyTaxableIncome", taxableFullYear, ratio))

	taxFullYear := states.MarginalTax(store, "it201.tax", Brackets2025[model.FilingStatus], taxableFullYear)
	nyTax := store.Put(money.ApplyRatio("it201.nyTax", taxFullYear, ratio))

	withholding := states.WithholdingForState(store, model, "it201", stateCode)
	totalPayments := store.Put(money.Rebind("it201.totalPayments", withholding))
	overpaid, amountOwed := states.Reconcile(store, "it201.reconcile", nyTax, totalPayments)

	if config.ResidencyType == domain.ResidencyPartYear {
		report.Info("NY-PARTYEAR", "state", "New York part-year apportionment applied by days-in-state ratio.", "Form IT-203")
	}

	return states.Result{
		StateCode:               stateCode,
		FormLabel:               "Form IT-201",
		ResidencyType:           config.ResidencyType,
		ApportionmentRatio:      ratio,
		StateAGI:                nyAGI,
		StateTaxableIncome:      nyTaxableIncome,
		StateTax:                nyTax,
		TaxAfterCredits:         nyTax,
		StateWithholding:        withholding,
		TotalPayments:           totalPayments,
		Overpaid:                overpaid,
		AmountOwed:              amountOwed,
		Detail:                  Detail{Additions: additions, Subtractions: subtractions},
		RequiresIncomeTaxFiling: true,
	}
}
