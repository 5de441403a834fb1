// Package scheduleb implements Schedule B: interest and ordinary dividend
// itemization, triggered when either total exceeds $1,500.
package scheduleb

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// PayerLine is one itemized row, preserving payer identity and the
// originating document id for the explainability trace.
type PayerLine struct {
	PayerName string
	SourceRef string
	Amount    money.TracedValue
}

// Result holds Schedule B's two totals plus the line items behind them.
// Required reports whether either total exceeded the $1,500 trigger;
// Schedule B is still computed (so Form 1040 lines 2b/3b have a value)
// even when not Required, since those lines are sums regardless of
// whether the schedule itself must be attached.
type Result struct {
	Required      bool
	InterestItems []PayerLine
	DividendItems []PayerLine
	Line4Interest money.TracedValue
	Line6Dividends money.TracedValue
}

// Compute builds Schedule B's totals from the return model's interest and
// dividend statements.
func Compute(store *tracer.Store, model *domain.ReturnModel) Result {
	var interestItems []PayerLine
	var interestTerms []money.TracedValue
	for i, stmt := range model.InterestStatements {
		ref := fmt.Sprintf("interestStatements[%d].box1Interest", i)
		nodeID := fmt.Sprintf("scheduleB.interest.%d", i)
		v := store.Put(money.Input(stmt.Box1Interest, nodeID, ref))
		interestItems = append(interestItems, PayerLine{PayerName: stmt.PayerName, SourceRef: ref, Amount: v})
		interestTerms = append(interestTerms, v)
	}
	line4 := store.Put(money.Sum("scheduleB.line4", interestTerms...))

	var dividendItems []PayerLine
	var dividendTerms []money.TracedValue
	for i, stmt := range model.DividendStatements {
		ref := fmt.Sprintf("dividendStatements[%d].box1aOrdinaryDividends", i)
		nodeID := fmt.Sprintf("scheduleB.dividend.%d", i)
		v := store.Put(money.Input(stmt.Box1aOrdinaryDividends, nodeID, ref))
		dividendItems = append(dividendItems, PayerLine{PayerName: stmt.PayerName, SourceRef: ref, Amount: v})
		dividendTerms = append(dividendTerms, v)
	}
	line6 := store.Put(money.Sum("scheduleB.line6", dividendTerms...))

	required := line4.Amount > constants.ScheduleBThreshold2025 || line6.Amount > constants.ScheduleBThreshold2025

	return Result{
		Required:       required,
		InterestItems:  interestItems,
		DividendItems:  dividendItems,
		Line4Interest:  line4,
		Line6Dividends: line6,
	}
}
