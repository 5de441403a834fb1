package credits

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// EnergyResult is Form 5695's nonrefundable residential energy credit.
type EnergyResult struct {
	Credit money.TracedValue // flows to Schedule 3
}

// ComputeEnergy sums cost x creditRate across every improvement; each
// improvement supplies its own statutory rate (30% for most Energy
// Efficient Home Improvement Credit items) since Form 5695 mixes several
// rates across its property categories.
func ComputeEnergy(store *tracer.Store, model *domain.ReturnModel) EnergyResult {
	var terms []money.TracedValue
	for i, e := range model.Credits.EnergyImprovements {
		prefix := fmt.Sprintf("form5695.improvement.%d", i)
		cost := store.Put(money.Literal(e.Cost, prefix+".cost", fmt.Sprintf("energyImprovements[%s].cost", e.Description)))
		credit := store.Put(money.Pct(prefix+".credit", cost, e.CreditRateBps, money.RoundHalfEven))
		terms = append(terms, credit)
	}
	total := store.Put(money.Sum("form5695.total", terms...))
	return EnergyResult{Credit: total}
}
