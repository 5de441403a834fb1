package states

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Bracket is one marginal-rate rung of a state's progressive tax table,
// the same shape constants.TaxBracket uses for the federal ladder.
type Bracket struct {
	UpTo    money.Cents
	RateBps int64
}

// MarginalTax walks brackets the same way form1040tax.marginalTax walks
// the federal ladder, generalized so every progressive-bracket state
// module (CA, NY, VA) shares one bracket-walk implementation instead of
// each reimplementing it.
func MarginalTax(store *tracer.Store, nodeIDPrefix string, brackets []Bracket, taxableIncome money.TracedValue) money.TracedValue {
	var terms []money.TracedValue
	lower := money.Cents(0)
	for i, b := range brackets {
		id := fmt.Sprintf("%s.bracket.%d", nodeIDPrefix, i)
		upperLit := store.Put(money.Literal(b.UpTo, id+".upperBound", "bracket upper bound"))
		capped := store.Put(money.MinV(id+".capped", taxableIncome, upperLit))
		lowerLit := store.Put(money.Literal(lower, id+".lowerBound", "bracket lower bound"))
		widthRaw := store.Put(money.SubV(id+".widthRaw", capped, lowerLit))
		width := store.Put(money.ClampZero(id+".width", widthRaw))
		tax := store.Put(money.Pct(id+".tax", width, b.RateBps, money.RoundHalfEven))
		terms = append(terms, tax)
		lower = b.UpTo
	}
	return store.Put(money.Sum(nodeIDPrefix+".total", terms...))
}

// WithholdingForState sums every W-2's box 17 state tax whose box 15
// state matches code.
func WithholdingForState(store *tracer.Store, model *domain.ReturnModel, nodeIDPrefix, code string) money.TracedValue {
	var terms []money.TracedValue
	for i, w := range model.WageStatements {
		if w.Box15State != code {
			continue
		}
		id := fmt.Sprintf("%s.withholding.%d", nodeIDPrefix, i)
		terms = append(terms, store.Put(money.Input(w.Box17StateTax, id, fmt.Sprintf("wageStatements[%d].box17StateTax", i))))
	}
	return store.Put(money.Sum(nodeIDPrefix+".withholding.total", terms...))
}

// Reconcile applies the universal overpaid/owed rule every state result
// shares: exactly one of overpaid or amountOwed is non-zero, both
// non-negative.
func Reconcile(store *tracer.Store, nodeIDPrefix string, taxAfterCredits, totalPayments money.TracedValue) (overpaid, amountOwed money.TracedValue) {
	overpaidRaw := store.Put(money.SubV(nodeIDPrefix+".overpaidRaw", totalPayments, taxAfterCredits))
	overpaid = store.Put(money.ClampZero(nodeIDPrefix+".overpaid", overpaidRaw))
	owedRaw := store.Put(money.SubV(nodeIDPrefix+".owedRaw", taxAfterCredits, totalPayments))
	amountOwed = store.Put(money.ClampZero(nodeIDPrefix+".amountOwed", owedRaw))
	return
}
