// Package hsa implements Form 8889, Health Savings Account contributions
// and distributions.
package hsa

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result holds Form 8889's deduction, excess-contribution penalty, and
// distribution taxability/penalty.
type Result struct {
	Present              bool
	ContributionLimit    money.TracedValue
	Deduction            money.TracedValue // flows to Schedule 1 line 10
	ExcessContribution   money.TracedValue
	ExcessPenalty        money.TracedValue // flows to Schedule 2
	TaxableDistribution  money.TracedValue // flows to Form 1040 line 8
	DistributionPenalty  money.TracedValue // flows to Schedule 2
}

// Compute applies Form 8889's arithmetic. The employer contribution is
// the descriptor's EmployerContribution when that is non-zero, and
// otherwise the sum of every W-2 box 12 code W entry.
func Compute(store *tracer.Store, model *domain.ReturnModel) Result {
	if model.HSA == nil {
		zero := func(id, reason string) money.TracedValue { return store.Put(money.Zero(id, reason)) }
		return Result{
			Present:             false,
			ContributionLimit:   zero("form8889.limit", "no HSA descriptor present"),
			Deduction:           zero("form8889.deduction", "no HSA descriptor present"),
			ExcessContribution:  zero("form8889.excess", "no HSA descriptor present"),
			ExcessPenalty:       zero("form8889.excessPenalty", "no HSA descriptor present"),
			TaxableDistribution: zero("form8889.taxableDistribution", "no HSA descriptor present"),
			DistributionPenalty: zero("form8889.distributionPenalty", "no HSA descriptor present"),
		}
	}

	h := model.HSA
	baseLimit := constants.HSASelfOnlyLimit2025
	if h.Coverage == domain.HSAFamily {
		baseLimit = constants.HSAFamilyLimit2025
	}
	limitAmount := baseLimit
	if h.Age55OrOlder {
		limitAmount += constants.HSACatchUpAge55
	}
	limit := store.Put(money.Literal(limitAmount, "form8889.limit", "coverage limit plus age-55 catch-up"))

	employerAmount, employerRef := h.EmployerContribution, "hsa.employerContribution"
	if employerAmount == 0 {
		for _, w := range model.WageStatements {
			for _, e := range w.Box12 {
				if e.Code == "W" {
					employerAmount += e.Amount
				}
			}
		}
		employerRef = "wageStatements[].box12 code W"
	}
	employer := store.Put(money.Input(employerAmount, "form8889.employerContribution", employerRef))
	taxpayer := store.Put(money.Input(h.TaxpayerContribution, "form8889.taxpayerContribution", "hsa.taxpayerContribution"))

	remaining := store.Put(money.SubV("form8889.remainingLimit", limit, employer))
	deduction := store.Put(money.MinV("form8889.deduction", taxpayer, remaining))
	deduction = store.Put(money.ClampZero("form8889.deductionFloor", deduction))

	total := store.Put(money.Sum("form8889.totalContributions", employer, taxpayer))
	excessRaw := store.Put(money.SubV("form8889.excessRaw", total, limit))
	excess := store.Put(money.ClampZero("form8889.excess", excessRaw))
	excessPenalty := store.Put(money.Pct("form8889.excessPenalty", excess, constants.HSAExcessPenaltyBps, money.RoundHalfEven))

	var distributionTerms []money.TracedValue
	for i, d := range model.Form1099SAList {
		v := store.Put(money.Input(d.Box1GrossDistribution, nodeIDForDistribution(i), "form1099SaList[].box1GrossDistribution"))
		distributionTerms = append(distributionTerms, v)
	}
	grossDistributions := store.Put(money.Sum("form8889.grossDistributions", distributionTerms...))
	qualified := store.Put(money.Input(h.QualifiedExpenses, "form8889.qualifiedExpenses", "hsa.qualifiedExpenses"))
	taxableRaw := store.Put(money.SubV("form8889.taxableRaw", grossDistributions, qualified))
	taxable := store.Put(money.ClampZero("form8889.taxableDistribution", taxableRaw))

	var distributionPenalty money.TracedValue
	if h.Age65OrDisabled {
		distributionPenalty = store.Put(money.Zero("form8889.distributionPenalty", "age 65 or disabled, penalty waived"))
	} else {
		distributionPenalty = store.Put(money.Pct("form8889.distributionPenalty", taxable, constants.HSANonQualifiedPenaltyBps, money.RoundHalfEven))
	}

	return Result{
		Present:             true,
		ContributionLimit:   limit,
		Deduction:           deduction,
		ExcessContribution:  excess,
		ExcessPenalty:       excessPenalty,
		TaxableDistribution: taxable,
		DistributionPenalty: distributionPenalty,
	}
}

func nodeIDForDistribution(i int) string {
	return fmt.Sprintf("form8889.distribution.%d", i)
}
