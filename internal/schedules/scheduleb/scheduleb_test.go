package scheduleb

import (
	"testing"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestScheduleBNotRequiredAtThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		InterestStatements: []domain.InterestStatement{{PayerName: "Bank", Box1Interest: 150000}}, // exactly $1,500
	}
	result := Compute(store, model)
	assert.False(t, result.Required)
	assert.Equal(t, int64(150000), int64(result.Line4Interest.Amount))
}

func TestScheduleBRequiredAboveThreshold(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		InterestStatements: []domain.InterestStatement{{PayerName: "Bank", Box1Interest: 150001}},
	}
	result := Compute(store, model)
	assert.True(t, result.Required)
}

func TestScheduleBDividendTrigger(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		DividendStatements: []domain.DividendStatement{{PayerName: "Broker", Box1aOrdinaryDividends: 300000}},
	}
	result := Compute(store, model)
	assert.True(t, result.Required)
	assert.Equal(t, int64(300000), int64(result.Line6Dividends.Amount))
}

func TestScheduleBCrossFormEquality(t *testing.T) {
	store := tracer.NewStore()
	model := &domain.ReturnModel{
		InterestStatements: []domain.InterestStatement{{PayerName: "Bank", Box1Interest: 330000}},
		DividendStatements: []domain.DividendStatement{{PayerName: "Broker", Box1aOrdinaryDividends: 300000}},
	}
	result := Compute(store, model)
	line2b := store.Put(money.Rebind("form1040.line2b", result.Line4Interest))
	line3b := store.Put(money.Rebind("form1040.line3b", result.Line6Dividends))
	assert.Equal(t, result.Line4Interest.Amount, line2b.Amount)
	assert.Equal(t, result.Line6Dividends.Amount, line3b.Amount)
}
