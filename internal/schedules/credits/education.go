package credits

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// EducationResult is Form 8863's combined AOTC/LLC output. AOTC's
// refundable 40% is computed per the statute even though this form isn't
// otherwise a refundable-credit form.
type EducationResult struct {
	AOTCNonrefundable money.TracedValue
	AOTCRefundable    money.TracedValue
	LLCCredit         money.TracedValue
	TotalNonrefundable money.TracedValue // flows to Schedule 3
	TotalRefundable    money.TracedValue // flows to line 29
}

const (
	aotcFirstTierCap  = money.Cents(200000) // $2,000 at 100%
	aotcSecondTierCap = money.Cents(200000) // next $2,000 at 25%
	aotcSecondTierBps = int64(2500)
	aotcRefundableBps = int64(4000) // 40%
	llcRateBps        = int64(2000) // 20%
	llcExpenseCap     = money.Cents(1000000) // $10,000
)

// ComputeEducation applies Form 8863 per student: AOTC for students in
// their first four years at half-time-or-more, LLC otherwise, each
// student eligible for only one credit. LLC's $10,000 expense cap is
// applied once across all LLC-eligible students combined, per the
// statute.
func ComputeEducation(store *tracer.Store, model *domain.ReturnModel) EducationResult {
	var aotcTerms []money.TracedValue
	var llcExpenseTerms []money.TracedValue

	for i, e := range model.Credits.Education {
		prefix := fmt.Sprintf("form8863.student.%d", i)
		expenses := store.Put(money.Literal(e.QualifiedExpenses, prefix+".expenses", fmt.Sprintf("education[%s].qualifiedExpenses", e.StudentName)))
		if e.FirstFourYears && e.HalfTimeOrMore {
			firstTierCap := store.Put(money.Literal(aotcFirstTierCap, prefix+".firstTierCap", "first $2,000 at 100%"))
			firstTier := store.Put(money.MinV(prefix+".firstTier", expenses, firstTierCap))
			remainingRaw := store.Put(money.SubV(prefix+".remainingRaw", expenses, firstTier))
			remaining := store.Put(money.ClampZero(prefix+".remaining", remainingRaw))
			secondTierCap := store.Put(money.Literal(aotcSecondTierCap, prefix+".secondTierCap", "next $2,000 at 25%"))
			secondTierBase := store.Put(money.MinV(prefix+".secondTierBase", remaining, secondTierCap))
			secondTier := store.Put(money.Pct(prefix+".secondTier", secondTierBase, aotcSecondTierBps, money.RoundHalfEven))
			studentCredit := store.Put(money.Sum(prefix+".aotcCredit", firstTier, secondTier))
			aotcTerms = append(aotcTerms, studentCredit)
		} else {
			llcExpenseTerms = append(llcExpenseTerms, expenses)
		}
	}

	aotcTotal := store.Put(money.Sum("form8863.aotcTotal", aotcTerms...))
	aotcRefundable := store.Put(money.Pct("form8863.aotcRefundable", aotcTotal, aotcRefundableBps, money.RoundHalfEven))
	aotcNonrefundable := store.Put(money.SubV("form8863.aotcNonrefundable", aotcTotal, aotcRefundable))

	llcExpensesRaw := store.Put(money.Sum("form8863.llcExpensesRaw", llcExpenseTerms...))
	llcCapLit := store.Put(money.Literal(llcExpenseCap, "form8863.llcCap", "$10,000 combined LLC expense cap"))
	llcExpenses := store.Put(money.MinV("form8863.llcExpenses", llcExpensesRaw, llcCapLit))
	llcCredit := store.Put(money.Pct("form8863.llcCredit", llcExpenses, llcRateBps, money.RoundHalfEven))

	totalNonrefundable := store.Put(money.Sum("form8863.totalNonrefundable", aotcNonrefundable, llcCredit))

	return EducationResult{
		AOTCNonrefundable:  aotcNonrefundable,
		AOTCRefundable:     aotcRefundable,
		LLCCredit:          llcCredit,
		TotalNonrefundable: totalNonrefundable,
		TotalRefundable:    aotcRefundable,
	}
}
