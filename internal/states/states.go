// Package states implements the state engine: the apportionment-ratio
// calculation, the StateModule interface every per-state package
// implements, and the registry/dispatch that fans a computed federal
// return out across every elected state return.
package states

import (
	"time"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/dateutil"
	"github.com/form1040/taxengine/pkg/money"
)

// Section is one grouping of a state module's review-screen layout. The
// engine never renders this itself; it exists only as a structural
// description a UI collaborator consumes.
type Section struct {
	Title  string
	Fields []string
}

// ResultLine names one line of a state module's result summary, pairing
// a display label with the nodeId a caller can feed to BuildTrace or
// ExplainLine.
type ResultLine struct {
	Label  string
	NodeID string
}

// Result is a single state's computed return summary.
type Result struct {
	StateCode          string
	FormLabel          string
	ResidencyType       domain.ResidencyType
	ApportionmentRatio money.Ratio

	StateAGI           money.TracedValue
	StateTaxableIncome money.TracedValue
	StateTax           money.TracedValue
	TaxAfterCredits    money.TracedValue
	StateWithholding   money.TracedValue
	TotalPayments      money.TracedValue
	Overpaid           money.TracedValue
	AmountOwed         money.TracedValue

	// Detail is a sum type keyed by state code: each state module
	// populates it with its own detail record (e.g. caDetail, nyDetail)
	// rather than forcing every state into one shared, mostly-empty
	// struct.
	Detail any

	Disclosures             []string
	RequiresIncomeTaxFiling bool
}

// ComputeFunc is a state module's compute entry point: it reads the
// return model, the already-computed federal Form 1040 result, and the
// caller's state-return election, and produces one Result. Every traced
// value it creates is written into its own store (never the federal
// store directly), so concurrent dispatch across states never races.
type ComputeFunc func(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) Result

// StateModule is the registered unit for one state: a state code, its
// display labels, its compute function, and the descriptive review-screen
// shape a UI collaborator would render (never consumed by the engine
// itself).
type StateModule struct {
	StateCode    string
	FormLabel    string
	SidebarLabel string
	Compute      ComputeFunc

	ReviewLayout      []Section
	ReviewResultLines []ResultLine
}

// Apportionment computes the share of the tax year a return applies to:
// 1.0 for a full-year resident, 0.0 for a nonresident, and the
// inclusive-day fraction of the tax year for a part-year resident,
// clamped to [0,1] and carried to four decimal places.
func Apportionment(config domain.StateReturnConfig, taxYear int, daysInYear int) money.Ratio {
	switch config.ResidencyType {
	case domain.ResidencyFullYear:
		return money.FullRatio()
	case domain.ResidencyNonresident:
		return money.ZeroRatio()
	case domain.ResidencyPartYear:
		from := time.Date(taxYear, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(taxYear, 12, 31, 0, 0, 0, 0, time.UTC)
		if config.MoveInDate != nil {
			from = *config.MoveInDate
		}
		if config.MoveOutDate != nil {
			to = *config.MoveOutDate
		}
		days := dateutil.DaysBetweenInclusive(from, to)
		return money.NewRatio(int64(days), int64(daysInYear))
	default:
		return money.ZeroRatio()
	}
}
