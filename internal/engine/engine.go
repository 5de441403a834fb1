// Package engine is the public entry point that sequences a complete
// compute: the federal Form 1040 orchestration, the elected state
// returns fanned out against it, validation and quality-gate collection,
// and the one merged trace store BuildTrace/ExplainLine read from. An
// Engine holding a Logger, built once via New, exposes ComputeAll for the
// full compute, plus ComputeForm1040, ValidateFederalReturn, Diagnose and
// the state-module lookups.
package engine

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/qualitygates"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/states/registry"
	"github.com/form1040/taxengine/internal/taxlog"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
)

// FullResult is the complete output of one compute: the federal Form
// 1040 result, every elected state's result, the merged trace store
// every BuildTrace/ExplainLine call reads from, and the non-blocking
// validation and quality-gate reports collected along the way. It lives
// here rather than internal/domain because it must reference both
// internal/orchestrator and internal/states, and domain is imported by
// both of those (an import cycle would result otherwise).
type FullResult struct {
	ScenarioLabel string

	Federal orchestrator.Result
	States  []StateResult

	Store      *tracer.Store
	Validation *validation.Report
	Gates      qualitygates.Report
}

// StateResult pairs one elected state's computed result with its own
// validation and quality-gate findings.
type StateResult struct {
	StateCode  string
	Found      bool
	Result     states.Result
	Validation *validation.Report
	Gates      qualitygates.Report
}

// Engine runs computes against a fixed state-module registry and emits
// Debugf lines at each major schedule boundary through an injected
// Logger.
type Engine struct {
	logger   taxlog.Logger
	registry *states.Registry
}

// New builds an Engine wired to the default state-module registry.
func New() *Engine {
	return &Engine{logger: taxlog.NopLogger{}, registry: registry.Default()}
}

// SetLogger installs logger for subsequent computes. A nil logger
// restores the NopLogger default.
func (e *Engine) SetLogger(logger taxlog.Logger) {
	if logger == nil {
		logger = taxlog.NopLogger{}
	}
	e.logger = logger
}

// ComputeAll runs the full federal-plus-state compute against model,
// returning domain.ModelInvalid (never panicking) if model violates a
// caller contract the engine assumes held.
func (e *Engine) ComputeAll(model *domain.ReturnModel) (FullResult, error) {
	if err := checkModelInvalid(model); err != nil {
		return FullResult{}, err
	}

	store := tracer.NewStore()
	e.logger.Debugf("computing federal Form 1040 for scenario %q", model.ScenarioLabel)
	fed := orchestrator.Compute(store, model)
	e.logger.Debugf("AGI computed: line11=%d", fed.Line11AGI.Amount)
	if fed.ItemizedElected {
		e.logger.Debugf("itemized deduction elected: line12=%d", fed.Line12Deduction.Amount)
	} else {
		e.logger.Debugf("standard deduction elected: line12=%d", fed.Line12Deduction.Amount)
	}
	e.logger.Debugf("total tax computed: line24=%d", fed.Line24TotalTax.Amount)

	gates := qualitygates.EvaluateFederal(fed)
	if !gates.AllPassed() {
		e.logger.Errorf("federal quality gates failed: %v", gates.Failed())
	}

	stateResults := make([]StateResult, 0, len(model.StateReturns))
	if len(model.StateReturns) > 0 {
		dispatched := states.Dispatch(e.registry, model, fed)
		for _, d := range dispatched {
			if !d.Found {
				e.logger.Warnf("no registered state module for code %q", d.StateCode)
				stateResults = append(stateResults, StateResult{StateCode: d.StateCode, Found: false})
				continue
			}
			store.Merge(d.Store)
			e.logger.Debugf("state %s computed: taxAfterCredits=%d", d.StateCode, d.Result.TaxAfterCredits.Amount)
			stateGates := qualitygates.EvaluateState(d.Result)
			if !stateGates.AllPassed() {
				e.logger.Errorf("state %s quality gates failed: %v", d.StateCode, stateGates.Failed())
			}
			stateResults = append(stateResults, StateResult{
				StateCode:  d.StateCode,
				Found:      true,
				Result:     d.Result,
				Validation: d.Validation,
				Gates:      stateGates,
			})
		}
	}

	validationReport := validation.ValidateFederal(model, fed)
	for _, sr := range stateResults {
		validationReport.Merge(sr.Validation)
	}

	return FullResult{
		ScenarioLabel: model.ScenarioLabel,
		Federal:       fed,
		States:        stateResults,
		Store:         store,
		Validation:    validationReport,
		Gates:         gates,
	}, nil
}

// ValidateFederalReturn runs the fail-fast caller-contract checks every
// compute applies, without running the compute itself.
func (e *Engine) ValidateFederalReturn(model *domain.ReturnModel) error {
	return checkModelInvalid(model)
}

// Diagnose runs the non-blocking data-anomaly validator against model,
// computing the federal return first if result is nil. Unlike
// ValidateFederalReturn, it never fails — it only surfaces info/warning
// diagnostics.
func (e *Engine) Diagnose(model *domain.ReturnModel, result *orchestrator.Result) (*validation.Report, error) {
	if err := checkModelInvalid(model); err != nil {
		return nil, err
	}
	if result != nil {
		return validation.ValidateFederal(model, *result), nil
	}
	store := tracer.NewStore()
	fed := orchestrator.Compute(store, model)
	return validation.ValidateFederal(model, fed), nil
}

// ComputeForm1040 runs only the federal orchestration, skipping every
// elected state return — the same compute ComputeAll performs minus the
// state-dispatch fan-out, useful to a caller that only needs the
// federal line values.
func (e *Engine) ComputeForm1040(model *domain.ReturnModel) (orchestrator.Result, *tracer.Store, error) {
	if err := checkModelInvalid(model); err != nil {
		return orchestrator.Result{}, nil, err
	}
	store := tracer.NewStore()
	return orchestrator.Compute(store, model), store, nil
}

// GetStateModule looks up a single registered state module by code.
func (e *Engine) GetStateModule(code string) (states.StateModule, bool) {
	return e.registry.Get(code)
}

// GetAllStateModules returns every registered state module, ordered by
// state code.
func (e *Engine) GetAllStateModules() []states.StateModule {
	return e.registry.All()
}

// checkModelInvalid applies the fail-fast caller-contract checks the
// rest of the engine assumes already hold.
func checkModelInvalid(model *domain.ReturnModel) error {
	if model == nil {
		return domain.NewModelInvalid("", "return model is nil")
	}
	if !model.FilingStatus.Valid() {
		return domain.NewModelInvalid("filingStatus", "unrecognized filing status")
	}
	if model.FilingStatus == domain.MarriedFilingJointly && model.Spouse == nil {
		return domain.NewModelInvalid("spouse", "married filing jointly requires a spouse record")
	}
	if model.DeductionMethod == domain.DeductionItemized && model.Itemized == nil {
		return domain.NewModelInvalid("itemized", "itemized deduction method requires an itemized worksheet")
	}
	for i, s := range model.StateReturns {
		if s.ResidencyType != domain.ResidencyFullYear && s.ResidencyType != domain.ResidencyPartYear && s.ResidencyType != domain.ResidencyNonresident {
			return domain.NewModelInvalid(fmt.Sprintf("stateReturns[%d]", i), "unrecognized residency type")
		}
	}
	return nil
}
