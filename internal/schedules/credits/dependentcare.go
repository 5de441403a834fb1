package credits

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// DependentCareResult is Form 2441's nonrefundable credit.
type DependentCareResult struct {
	EligibleExpenses money.TracedValue
	CreditRate       int64
	Credit           money.TracedValue // flows to Schedule 3
}

const (
	dependentCareExpenseCapOne = money.Cents(300000) // $3,000, one qualifying person
	dependentCareExpenseCapTwo = money.Cents(600000) // $6,000, two or more
	dependentCareRateBps       = int64(2000)          // 20%, flat (AGI-tiered rate simplified per spec's light-touch treatment)
)

// ComputeDependentCare applies Form 2441. earnedIncomeFloor caps the
// eligible expenses; the caller supplies it pre-computed. The
// orchestrator passes the return's combined earned income, so on a joint
// return the lower-earning spouse's earned income is not applied as a
// separate limit.
func ComputeDependentCare(store *tracer.Store, model *domain.ReturnModel, earnedIncomeFloor money.TracedValue) DependentCareResult {
	var terms []money.TracedValue
	for i, e := range model.Credits.DependentCare {
		v := store.Put(money.Literal(e.Expenses, fmt.Sprintf("form2441.expense.%d", i), fmt.Sprintf("dependentCare[%s].expenses", e.DependentName)))
		terms = append(terms, v)
	}
	raw := store.Put(money.Sum("form2441.rawExpenses", terms...))

	cap := dependentCareExpenseCapOne
	if len(model.Credits.DependentCare) > 1 {
		cap = dependentCareExpenseCapTwo
	}
	capLit := store.Put(money.Literal(cap, "form2441.cap", "statutory expense cap by number of qualifying persons"))
	capped := store.Put(money.MinV("form2441.capped", raw, capLit))
	eligible := store.Put(money.MinV("form2441.eligible", capped, earnedIncomeFloor))

	credit := store.Put(money.Pct("form2441.credit", eligible, dependentCareRateBps, money.RoundHalfEven))

	return DependentCareResult{
		EligibleExpenses: eligible,
		CreditRate:       dependentCareRateBps,
		Credit:           credit,
	}
}
