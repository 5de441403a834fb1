// Package addlmedicare implements Form 8959, the Additional Medicare Tax:
// a flat rate above a filing-status threshold, applied to the combined
// Medicare wage and self-employment earnings base.
package addlmedicare

import (
	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result is Form 8959's additional 0.9% tax, flowing to Schedule 2.
type Result struct {
	Tax money.TracedValue
}

// Compute applies 0.9% to the sum of Medicare wages and SE earnings above
// the filing-status threshold.
func Compute(store *tracer.Store, model *domain.ReturnModel, medicareWages, seEarnings money.TracedValue) Result {
	combined := store.Put(money.Sum("form8959.combinedWages", medicareWages, seEarnings))
	threshold := store.Put(money.Literal(constants.AddlMedicareThreshold[model.FilingStatus], "form8959.threshold", "filing-status threshold"))
	excessRaw := store.Put(money.SubV("form8959.excessRaw", combined, threshold))
	excess := store.Put(money.ClampZero("form8959.excess", excessRaw))
	tax := store.Put(money.Pct("form8959.tax", excess, constants.AddlMedicareRateBps, money.RoundHalfEven))
	return Result{Tax: tax}
}
