package credits

import (
	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// SaverCreditResult is Form 8880's nonrefundable credit.
type SaverCreditResult struct {
	RateBps              int64
	EligibleContribution money.TracedValue
	Credit               money.TracedValue // flows to Schedule 3
}

// rateForAGI finds the first bracket whose AGIUpTo the given amount does
// not exceed.
func rateForAGI(brackets []constants.SaverCreditBracket, agi money.Cents) int64 {
	for _, b := range brackets {
		if agi <= b.AGIUpTo {
			return b.RateBps
		}
	}
	return 0
}

// ComputeSaverCredit applies Form 8880: the contribution (capped at
// $2,000) times the AGI-tiered rate. credits.retirementContributions is
// used as given: nothing here or in the orchestrator removes
// contributions by a dependent, a full-time student, or someone under 18.
func ComputeSaverCredit(store *tracer.Store, model *domain.ReturnModel, agi money.TracedValue) SaverCreditResult {
	contribution := store.Put(money.Literal(model.Credits.RetirementContributions, "form8880.contribution", "credits.retirementContributions"))
	cap := store.Put(money.Literal(constants.SaverCreditContributionCap, "form8880.cap", "$2,000 contribution cap"))
	eligible := store.Put(money.MinV("form8880.eligible", contribution, cap))

	rate := rateForAGI(constants.SaverCreditBrackets2025[model.FilingStatus], agi.Amount)
	credit := store.Put(money.Pct("form8880.credit", eligible, rate, money.RoundHalfEven))

	return SaverCreditResult{
		RateBps:              rate,
		EligibleContribution: eligible,
		Credit:               credit,
	}
}
