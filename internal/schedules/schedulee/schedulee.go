// Package schedulee implements Schedule E Part I (rental real estate):
// per-property net income and the QBI rental safe-harbor election that
// feeds into the qualified business income deduction.
package schedulee

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// PropertyResult is one rental property's net income or loss.
type PropertyResult struct {
	Address              string
	Owner                domain.DistributionOwner
	RentsReceived        money.TracedValue
	TotalExpenses        money.TracedValue
	NetIncome            money.TracedValue
	ActivelyParticipates bool
	QBISafeHarborElected bool
}

// ComputeProperty sums a property's expense categories plus depreciation
// against rents received.
func ComputeProperty(store *tracer.Store, idx int, p *domain.RentalProperty) PropertyResult {
	prefix := fmt.Sprintf("scheduleE.%d", idx)
	rents := store.Put(money.Input(p.RentsReceived, prefix+".rents", fmt.Sprintf("rentals[%d].rentsReceived", idx)))

	var expenseTerms []money.TracedValue
	for cat, amt := range p.ExpensesByCategory {
		v := store.Put(money.Input(amt, fmt.Sprintf("%s.expense.%s", prefix, cat), fmt.Sprintf("rentals[%d].expensesByCategory[%s]", idx, cat)))
		expenseTerms = append(expenseTerms, v)
	}
	depreciation := store.Put(money.Input(p.Depreciation, prefix+".depreciation", fmt.Sprintf("rentals[%d].depreciation", idx)))
	expenseTerms = append(expenseTerms, depreciation)
	totalExpenses := store.Put(money.Sum(prefix+".totalExpenses", expenseTerms...))

	netIncome := store.Put(money.SubV(prefix+".netIncome", rents, totalExpenses))

	return PropertyResult{
		Address:              p.Address,
		Owner:                p.Owner,
		RentsReceived:        rents,
		TotalExpenses:        totalExpenses,
		NetIncome:            netIncome,
		ActivelyParticipates: p.ActivelyParticipates,
		QBISafeHarborElected: p.QBISafeHarborElected,
	}
}

// ComputeAll runs ComputeProperty over every rental and sums the total
// Schedule E net income, flowing to Schedule 1 line 5.
func ComputeAll(store *tracer.Store, model *domain.ReturnModel) (properties []PropertyResult, total money.TracedValue) {
	properties = make([]PropertyResult, 0, len(model.Rentals))
	var terms []money.TracedValue
	for i := range model.Rentals {
		r := ComputeProperty(store, i, &model.Rentals[i])
		properties = append(properties, r)
		terms = append(terms, r.NetIncome)
	}
	total = store.Put(money.Sum("scheduleE.totalNetIncome", terms...))
	return properties, total
}
