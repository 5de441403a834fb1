// Package taxengine is the library's public surface: a thin wrapper over
// internal/engine, internal/tracer, and internal/states exposing exactly
// the entry points a caller needs to run a compute, explain a line, and
// enumerate the state modules this engine ships — nothing about how the
// compute is sequenced internally leaks through this package.
package taxengine

import (
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/engine"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/schedules/scheduleb"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/taxlog"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
)

// ValidationReport is the non-blocking diagnostic report Diagnose
// returns: a list of info/warning/error items, never a reason to fail a
// compute.
type ValidationReport = validation.Report

// Logger is the interface SetLogger accepts: Debugf/Infof/Warnf/Errorf,
// matching every schedule boundary's log call.
type Logger = taxlog.Logger

// FullResult is the complete output of ComputeAll: the federal result,
// every elected state's result, and the merged trace/validation/quality
// -gate reports.
type FullResult = engine.FullResult

// StateResult is one elected state's outcome within a FullResult.
type StateResult = engine.StateResult

// Engine runs computes against the built-in state-module registry. The
// zero value is not usable; construct one with New.
type Engine struct {
	inner *engine.Engine
}

// New builds an Engine wired to every state module this repository
// ships.
func New() *Engine {
	return &Engine{inner: engine.New()}
}

// SetLogger installs a logger that receives Debugf/Infof/Warnf/Errorf
// lines at each major schedule boundary of subsequent computes.
func (e *Engine) SetLogger(logger Logger) {
	e.inner.SetLogger(logger)
}

// ComputeAll runs the full federal-plus-state compute against model.
func (e *Engine) ComputeAll(model *domain.ReturnModel) (FullResult, error) {
	return e.inner.ComputeAll(model)
}

// ComputeForm1040 runs only the federal Form 1040 orchestration, with no
// state dispatch, returning the result and the trace store BuildTrace
// reads from.
func (e *Engine) ComputeForm1040(model *domain.ReturnModel) (orchestrator.Result, *tracer.Store, error) {
	return e.inner.ComputeForm1040(model)
}

// ComputeScheduleB runs Schedule B in isolation against model's interest
// and dividend statements, writing its traced values into a fresh store.
func (e *Engine) ComputeScheduleB(model *domain.ReturnModel) (scheduleb.Result, *tracer.Store) {
	store := tracer.NewStore()
	return scheduleb.Compute(store, model), store
}

// ValidateFederalReturn runs the fail-fast caller-contract checks
// ComputeAll applies, without running the compute itself, so a caller can
// check a model's validity ahead of time.
func (e *Engine) ValidateFederalReturn(model *domain.ReturnModel) error {
	return e.inner.ValidateFederalReturn(model)
}

// Diagnose runs the non-blocking data-anomaly validator against model.
// Pass a previously computed orchestrator.Result to avoid recomputing it, or
// nil to let Diagnose compute it internally.
func (e *Engine) Diagnose(model *domain.ReturnModel, result *orchestrator.Result) (*ValidationReport, error) {
	return e.inner.Diagnose(model, result)
}

// GetStateModule looks up one registered state module by its two-letter
// code.
func (e *Engine) GetStateModule(code string) (states.StateModule, bool) {
	return e.inner.GetStateModule(code)
}

// GetAllStateModules returns every registered state module, ordered by
// state code.
func (e *Engine) GetAllStateModules() []states.StateModule {
	return e.inner.GetAllStateModules()
}

// BuildTrace produces the dependency graph rooted at nodeID from a
// compute's merged trace store (FullResult.Store or the store
// ComputeForm1040/ComputeScheduleB returns).
func BuildTrace(store *tracer.Store, nodeID string) (*tracer.TraceGraph, error) {
	return tracer.BuildTrace(store, nodeID)
}

// ExplainLine renders the human-readable multi-sentence explanation for
// nodeID from a compute's trace store.
func ExplainLine(store *tracer.Store, nodeID string) (string, error) {
	return tracer.ExplainLine(store, nodeID)
}
