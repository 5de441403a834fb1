package states

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/validation"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopCompute(store *tracer.Store, report *validation.Report, model *domain.ReturnModel, fed orchestrator.Result, config domain.StateReturnConfig) Result {
	return Result{StateCode: config.StateCode, ApportionmentRatio: money.FullRatio()}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(StateModule{StateCode: "ZZ", SidebarLabel: "Zed", Compute: noopCompute})

	m, found := r.Get("ZZ")
	require.True(t, found)
	assert.Equal(t, "Zed", m.SidebarLabel)

	_, found = r.Get("YY")
	assert.False(t, found)
}

func TestRegistry_All_SortedByCode(t *testing.T) {
	r := NewRegistry()
	r.Register(StateModule{StateCode: "NY", Compute: noopCompute})
	r.Register(StateModule{StateCode: "CA", Compute: noopCompute})
	r.Register(StateModule{StateCode: "PA", Compute: noopCompute})

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"CA", "NY", "PA"}, []string{all[0].StateCode, all[1].StateCode, all[2].StateCode})
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(StateModule{StateCode: "CA", SidebarLabel: "first", Compute: noopCompute})
	r.Register(StateModule{StateCode: "CA", SidebarLabel: "second", Compute: noopCompute})

	m, found := r.Get("CA")
	require.True(t, found)
	assert.Equal(t, "second", m.SidebarLabel)
	assert.Len(t, r.All(), 1)
}
