// Package fl implements the Florida state module: a no-income-tax state
// that still computes apportionment and surfaces withheld state tax as a
// disclosure rather than silently dropping it.
package fl

import (
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/money"
)

const stateCode = "FL"

// Detail is FL's state-specific record; Florida levies no personal
// income tax, so there is nothing beyond the withholding disclosure.
type Detail struct{}

func Module() states.StateModule {
	return states.StateModule{
		StateCode:    stateCode,
		FormLabel:    "(no state income tax return)",
		SidebarLabel: "Florida",
		Compute:      compute,
		ReviewLayout: []states.Section{
			{Title: "Florida", Fields: []string{"noIncomeTax"}},
		},
		ReviewResultLines: []states.ResultLine{
			{Label: "Florida Withholding (flagged)", NodeID: "fl.withholding"},
		},
	}
}

func compute(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) states.Result {
	ratio := states.Apportionment(config, 2025, 365)

	zero := store.Put(money.Zero("fl.tax", "Florida levies no personal income tax"))
	withholding := states.WithholdingForState(store, model, "fl", stateCode)
	totalPayments := store.Put(money.Rebind("fl.totalPayments", withholding))
	overpaid, amountOwed := states.Reconcile(store, "fl.reconcile", zero, totalPayments)

	var disclosures []string
	if withholding.Amount > 0 {
		disclosures = append(disclosures, "Florida withholding was reported on a W-2 despite Florida having no personal income tax; verify the box 15 state code.")
		report.Warn("FL-WITHHOLDING", "state", "Nonzero Florida state withholding reported on a no-income-tax state's W-2.", "")
	}

	return states.Result{
		StateCode:               stateCode,
		FormLabel:               "(no state income tax return)",
		ResidencyType:           config.ResidencyType,
		ApportionmentRatio:      ratio,
		StateAGI:                zero,
		StateTaxableIncome:      zero,
		StateTax:                zero,
		TaxAfterCredits:         zero,
		StateWithholding:        withholding,
		TotalPayments:           totalPayments,
		Overpaid:                overpaid,
		AmountOwed:              amountOwed,
		Detail:                  Detail{},
		Disclosures:             disclosures,
		RequiresIncomeTaxFiling: false,
	}
}
