// Package registry builds the default state-module registry: one module
// per state, each a value conforming to the StateModule interface,
// registered at startup. Separated from internal/states itself so the
// core package never imports its own implementations (avoiding an
// import cycle between the registry and each state package).
package registry

import (
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/internal/states/ca"
	"github.com/form1040/taxengine/internal/states/fl"
	"github.com/form1040/taxengine/internal/states/ny"
	"github.com/form1040/taxengine/internal/states/pa"
	"github.com/form1040/taxengine/internal/states/va"
)

// Default builds a fresh registry with every state module this engine
// ships registered under its state code.
func Default() *states.Registry {
	r := states.NewRegistry()
	r.Register(ca.Module())
	r.Register(ny.Module())
	r.Register(pa.Module())
	r.Register(va.Module())
	r.Register(fl.Module())
	return r
}
