// Package scheduled implements Form 8949's categorization and Schedule
// D's aggregation.
package scheduled

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// TransactionRow is one Form 8949 row with its computed gain/loss.
type TransactionRow struct {
	Description string
	Proceeds    money.TracedValue
	Basis       money.TracedValue
	GainLoss    money.TracedValue
}

// CategoryAggregate is one Form 8949 category's (A-F) rollup.
type CategoryAggregate struct {
	Category         domain.SaleCategory
	Rows             []TransactionRow
	TotalProceeds    money.TracedValue
	TotalBasis       money.TracedValue
	TotalAdjustments money.TracedValue
	TotalGainLoss    money.TracedValue
}

// Form8949Result groups every category's aggregate.
type Form8949Result struct {
	Categories map[domain.SaleCategory]CategoryAggregate
}

var allCategories = []domain.SaleCategory{
	domain.CategoryA, domain.CategoryB, domain.CategoryC,
	domain.CategoryD, domain.CategoryE, domain.CategoryF,
}

// ComputeForm8949 categorizes every sale transaction and aggregates each
// category. Gain/loss per row: proceeds - (basis + adjustmentAmount), with
// any wash-sale-disallowed amount added back (it cannot make the row's
// loss deeper; a disallowed amount equal to the raw loss nets exactly to
// zero rather than going positive).
func ComputeForm8949(store *tracer.Store, model *domain.ReturnModel) Form8949Result {
	byCategory := make(map[domain.SaleCategory][]domain.SaleTransaction)
	for _, txn := range model.SaleTransactions {
		byCategory[txn.Category] = append(byCategory[txn.Category], txn)
	}

	result := Form8949Result{Categories: make(map[domain.SaleCategory]CategoryAggregate)}
	for _, cat := range allCategories {
		txns := byCategory[cat]
		agg := CategoryAggregate{Category: cat}
		var proceedsTerms, basisTerms, adjTerms, gainTerms []money.TracedValue

		for i, txn := range txns {
			prefix := fmt.Sprintf("form8949.%s.%d", cat, i)
			proceeds := store.Put(money.Input(txn.Proceeds, prefix+".proceeds", fmt.Sprintf("saleTransactions[%s].proceeds", txn.Description)))

			basisAmount := txn.AdjustedBasis
			if txn.ReportedBasis != nil {
				basisAmount = *txn.ReportedBasis
			}
			basis := store.Put(money.Input(basisAmount, prefix+".basis", fmt.Sprintf("saleTransactions[%s].basis", txn.Description)))

			adjustment := store.Put(money.Literal(txn.AdjustmentAmount, prefix+".adjustment", fmt.Sprintf("adjustment code %s", txn.AdjustmentCode)))
			washSale := store.Put(money.Literal(txn.WashSaleDisallowed, prefix+".washSale", "wash sale loss disallowed, added back"))

			basisPlusAdj := store.Put(money.Sum(prefix+".basisPlusAdj", basis, adjustment))
			afterAdjustment := store.Put(money.SubV(prefix+".afterAdjustment", proceeds, basisPlusAdj))
			gainLoss := store.Put(money.Sum(prefix+".gainLoss", afterAdjustment, washSale))

			row := TransactionRow{Description: txn.Description, Proceeds: proceeds, Basis: basis, GainLoss: gainLoss}
			agg.Rows = append(agg.Rows, row)
			proceedsTerms = append(proceedsTerms, proceeds)
			basisTerms = append(basisTerms, basis)
			adjTerms = append(adjTerms, adjustment)
			gainTerms = append(gainTerms, gainLoss)
		}

		agg.TotalProceeds = store.Put(money.Sum(fmt.Sprintf("form8949.%s.totalProceeds", cat), proceedsTerms...))
		agg.TotalBasis = store.Put(money.Sum(fmt.Sprintf("form8949.%s.totalBasis", cat), basisTerms...))
		agg.TotalAdjustments = store.Put(money.Sum(fmt.Sprintf("form8949.%s.totalAdjustments", cat), adjTerms...))
		agg.TotalGainLoss = store.Put(money.Sum(fmt.Sprintf("form8949.%s.totalGainLoss", cat), gainTerms...))
		result.Categories[cat] = agg
	}
	return result
}
