// Package schedulec implements Schedule C (business profit/loss) and Form
// 8829 (home office deduction).
package schedulec

import (
	"fmt"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// BusinessResult is one business's Schedule C output.
type BusinessResult struct {
	Owner              domain.DistributionOwner
	GrossProfit        money.TracedValue
	GrossIncome        money.TracedValue
	TotalExpenses      money.TracedValue
	TentativeProfit    money.TracedValue
	HomeOfficeDeduction money.TracedValue
	HomeOfficeCarryforward money.TracedValue
	NetProfit          money.TracedValue
	W2WagesPaid        money.Cents
	UBIA               money.Cents
	SSTB               bool
}

// homeOffice8829 computes the Form 8829 deduction, limited to profit
// before the home-office deduction with the excess carried forward.
func homeOffice8829(store *tracer.Store, idx int, hw *domain.HomeOfficeWorksheet, profitBeforeHomeOffice money.TracedValue) (deduction, carryforward money.TracedValue) {
	prefix := fmt.Sprintf("form8829.%d", idx)
	if hw == nil {
		return store.Put(money.Zero(prefix+".deduction", "no home office worksheet")),
			store.Put(money.Zero(prefix+".carryforward", "no home office worksheet"))
	}

	var tentative money.TracedValue
	if hw.Method == domain.HomeOfficeSimplified {
		sqft := hw.BusinessSquareFootage
		if sqft > 300 {
			sqft = 300
		}
		lit := store.Put(money.Literal(money.Cents(sqft*500), prefix+".simplifiedAmount", "min(business sq ft, 300) x $5"))
		tentative = lit
	} else {
		var businessPct money.Ratio
		if hw.TotalSquareFootage > 0 {
			businessPct = money.NewRatio(int64(hw.BusinessSquareFootage), int64(hw.TotalSquareFootage))
		}
		direct := store.Put(money.Literal(hw.DirectExpenses, prefix+".direct", "direct expenses, 100%"))
		indirectRaw := store.Put(money.Literal(hw.IndirectExpenses, prefix+".indirectRaw", "indirect expenses before proration"))
		indirect := store.Put(money.ApplyRatio(prefix+".indirect", indirectRaw, businessPct))
		mortgageRaw := store.Put(money.Literal(hw.AllocatableMortgageInterest, prefix+".mortgageRaw", "allocatable mortgage interest before proration"))
		mortgage := store.Put(money.ApplyRatio(prefix+".mortgage", mortgageRaw, businessPct))
		taxesRaw := store.Put(money.Literal(hw.AllocatableRealEstateTaxes, prefix+".taxesRaw", "allocatable real estate taxes before proration"))
		taxes := store.Put(money.ApplyRatio(prefix+".taxes", taxesRaw, businessPct))
		depreciation := store.Put(money.Literal(hw.Depreciation, prefix+".depreciation", "depreciation, additive"))
		tentative = store.Put(money.Sum(prefix+".tentative", direct, indirect, mortgage, taxes, depreciation))
	}

	profitLimit := store.Put(money.ClampZero(prefix+".profitLimit", profitBeforeHomeOffice))
	deduction = store.Put(money.MinV(prefix+".deduction", tentative, profitLimit))
	carryforward = store.Put(money.SubV(prefix+".carryforward", tentative, deduction))
	return deduction, carryforward
}

// ComputeBusiness computes one Schedule C business plus its Form 8829
// home-office deduction if present.
func ComputeBusiness(store *tracer.Store, idx int, b *domain.SelfEmploymentBusiness) BusinessResult {
	prefix := fmt.Sprintf("scheduleC.%d", idx)
	receipts := store.Put(money.Input(b.GrossReceipts, prefix+".grossReceipts", fmt.Sprintf("businesses[%d].grossReceipts", idx)))
	returns := store.Put(money.Input(b.Returns, prefix+".returns", fmt.Sprintf("businesses[%d].returns", idx)))
	cogs := store.Put(money.Input(b.COGS, prefix+".cogs", fmt.Sprintf("businesses[%d].cogs", idx)))
	returnsPlusCogs := store.Put(money.Sum(prefix+".returnsPlusCogs", returns, cogs))
	grossProfit := store.Put(money.SubV(prefix+".grossProfit", receipts, returnsPlusCogs))

	otherIncome := store.Put(money.Zero(prefix+".otherIncome", "other business income not modeled"))
	grossIncome := store.Put(money.Sum(prefix+".grossIncome", grossProfit, otherIncome))

	var expenseTerms []money.TracedValue
	for cat, amt := range b.ExpensesByCategory {
		v := store.Put(money.Input(amt, fmt.Sprintf("%s.expense.%s", prefix, cat), fmt.Sprintf("businesses[%d].expensesByCategory[%s]", idx, cat)))
		expenseTerms = append(expenseTerms, v)
	}
	mealsRaw := store.Put(money.Input(b.MealsExpense, prefix+".mealsRaw", fmt.Sprintf("businesses[%d].mealsExpense", idx)))
	meals := store.Put(money.Pct(prefix+".meals", mealsRaw, 5000, money.RoundHalfEven))
	expenseTerms = append(expenseTerms, meals)
	totalExpenses := store.Put(money.Sum(prefix+".totalExpenses", expenseTerms...))

	tentativeProfit := store.Put(money.SubV(prefix+".tentativeProfit", grossIncome, totalExpenses))

	homeOfficeDeduction, carryforward := homeOffice8829(store, idx, b.HomeOffice, tentativeProfit)
	netProfit := store.Put(money.SubV(prefix+".netProfit", tentativeProfit, homeOfficeDeduction))

	return BusinessResult{
		Owner:                  b.Owner,
		GrossProfit:             grossProfit,
		GrossIncome:             grossIncome,
		TotalExpenses:           totalExpenses,
		TentativeProfit:         tentativeProfit,
		HomeOfficeDeduction:     homeOfficeDeduction,
		HomeOfficeCarryforward:  carryforward,
		NetProfit:               netProfit,
		W2WagesPaid:             b.W2WagesPaid,
		UBIA:                    b.UBIA,
		SSTB:                    b.SSTB,
	}
}

// ComputeAll runs ComputeBusiness over every business in the model.
func ComputeAll(store *tracer.Store, model *domain.ReturnModel) []BusinessResult {
	results := make([]BusinessResult, 0, len(model.Businesses))
	for i := range model.Businesses {
		results = append(results, ComputeBusiness(store, i, &model.Businesses[i]))
	}
	return results
}
