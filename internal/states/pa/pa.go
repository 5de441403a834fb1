// Package pa implements the Pennsylvania state module: a flat-rate state
// that excludes retirement distributions and Social Security benefits
// from its tax base entirely.
package pa

import (
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/money"
)

const stateCode = "PA"

// FlatRateBps is Pennsylvania's flat personal income tax rate, 3.07%.
const FlatRateBps = int64(307)

// Detail is PA's state-specific record.
type Detail struct {
	ExemptRetirementIncome money.TracedValue
}

func Module() states.StateModule {
	return states.StateModule{
		StateCode:    stateCode,
		FormLabel:    "PA-40",
		SidebarLabel: "Pennsylvania",
		Compute:      compute,
		ReviewLayout: []states.Section{
			{Title: "Pennsylvania Taxable Compensation", Fields: []string{"paTaxableIncome"}},
		},
		ReviewResultLines: []states.ResultLine{
			{Label: "PA Taxable Income", NodeID: "pa40.taxableIncome"},
			{Label: "PA Tax", NodeID: "pa40.tax"},
			{Label: "PA Refund/Owed", NodeID: "pa40.reconcile"},
		},
	}
}

func compute(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) states.Result {
	ratio := states.Apportionment(config, 2025, 365)

	// Pennsylvania excludes pensions/IRA distributions and Social
	// Security benefits from its tax base entirely; its taxable
	// compensation is wages plus taxable interest and ordinary dividends
	// (net capital gains are taxed separately on PA Schedule D, not
	// modeled here).
	exemptRetirement := store.Put(money.Sum("pa40.exemptRetirementIncome",
		fed.Line4bTaxableIRA, fed.Line5bTaxablePensions, fed.Line6bTaxableSocialSecurity))

	taxableFullYear := store.Put(money.Sum("pa40.taxableIncomeFullYear",
		fed.Line1zWages, fed.Line2bTaxableInterest, fed.Line3bOrdinaryDividends))
	paTaxableIncome := store.Put(money.ApplyRatio("pa40.taxableIncome", taxableFullYear, ratio))

	taxFullYear := store.Put(money.Pct("pa40.taxFullYear", taxableFullYear, FlatRateBps, money.RoundHalfEven))
	paTax := store.Put(money.ApplyRatio("pa40.tax", taxFullYear, ratio))

	withholding := states.WithholdingForState(store, model, "pa40", stateCode)
	totalPayments := store.Put(money.Rebind("pa40.totalPayments", withholding))
	overpaid, amountOwed := states.Reconcile(store, "pa40.reconcile", paTax, totalPayments)

	stateAGI := store.Put(money.Rebind("pa40.stateAGI", taxableFullYear))

	return states.Result{
		StateCode:               stateCode,
		FormLabel:               "PA-40",
		ResidencyType:           config.ResidencyType,
		ApportionmentRatio:      ratio,
		StateAGI:                stateAGI,
		StateTaxableIncome:      paTaxableIncome,
		StateTax:                paTax,
		TaxAfterCredits:         paTax,
		StateWithholding:        withholding,
		TotalPayments:           totalPayments,
		Overpaid:                overpaid,
		AmountOwed:              amountOwed,
		Detail:                  Detail{ExemptRetirementIncome: exemptRetirement},
		Disclosures:             []string{"Pennsylvania excludes pensions, IRA distributions, and Social Security benefits from its tax base."},
		RequiresIncomeTaxFiling: true,
	}
}
