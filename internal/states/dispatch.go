package states

import (
	"sync"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
)

// Dispatched is one elected state return's outcome: its Result, the
// traced values its compute produced (to be merged into the federal
// store), and any validation items it raised.
type Dispatched struct {
	StateCode  string
	Result     Result
	Store      *tracer.Store
	Validation *validation.Report
	Found      bool
}

// Dispatch computes every state return the model elects, in the order
// they're listed, one per registered StateModule. Each state's compute
// runs against its own *tracer.Store and *validation.Report so unrelated
// states never share mutable state; this implementation fans out with a
// goroutine per election since the per-state compute is pure and
// independent, then collects results back in the model's original
// election order regardless of completion order, so output ordering
// never depends on scheduling.
func Dispatch(registry *Registry, model *domain.ReturnModel, fed orchestrator.Result) []Dispatched {
	out := make([]Dispatched, len(model.StateReturns))
	var wg sync.WaitGroup
	for i, config := range model.StateReturns {
		wg.Add(1)
		go func(i int, config domain.StateReturnConfig) {
			defer wg.Done()
			module, found := registry.Get(config.StateCode)
			if !found {
				out[i] = Dispatched{StateCode: config.StateCode, Found: false}
				return
			}
			store := tracer.NewStore()
			report := validation.NewReport()
			result := module.Compute(store, report, model, fed, config)
			out[i] = Dispatched{
				StateCode:  config.StateCode,
				Result:     result,
				Store:      store,
				Validation: report,
				Found:      true,
			}
		}(i, config)
	}
	wg.Wait()
	return out
}
