// Package form1040tax applies the ordinary marginal-rate ladder and the
// Qualified Dividends and Capital Gain Tax Worksheet's stacked 0%/15%/20%
// preferential rate: accumulate tax owed on the portion of income that
// falls within each bracket rather than applying one flat rate to the
// whole amount.
package form1040tax

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result is Form 1040 line 16's regular tax, split into its ordinary and
// preferential-rate components for explainability.
type Result struct {
	OrdinaryIncome      money.TracedValue
	PreferentialIncome  money.TracedValue
	OrdinaryTax         money.TracedValue
	PreferentialTax     money.TracedValue
	TotalTax            money.TracedValue
}

// marginalTax walks the filing status's bracket ladder, summing the
// marginal rate applied to the portion of taxableIncome that falls in
// each rung.
func marginalTax(store *tracer.Store, nodeIDPrefix string, model *domain.ReturnModel, taxableIncome money.TracedValue) money.TracedValue {
	brackets := constants.FederalBrackets2025[model.FilingStatus]
	var terms []money.TracedValue
	lower := money.Cents(0)
	for i, b := range brackets {
		id := fmt.Sprintf("%s.bracket.%d", nodeIDPrefix, i)
		upperLit := store.Put(money.Literal(b.UpTo, id+".upperBound", "bracket upper bound"))
		capped := store.Put(money.MinV(id+".capped", taxableIncome, upperLit))
		lowerLit := store.Put(money.Literal(lower, id+".lowerBound", "bracket lower bound"))
		widthRaw := store.Put(money.SubV(id+".widthRaw", capped, lowerLit))
		width := store.Put(money.ClampZero(id+".width", widthRaw))
		tax := store.Put(money.Pct(id+".tax", width, b.RateBps, money.RoundHalfEven))
		terms = append(terms, tax)
		lower = b.UpTo
	}
	return store.Put(money.Sum(nodeIDPrefix+".total", terms...))
}

// preferentialTax applies the stacked 0%/15%/20% ladder: preferentialIncome
// sits on top of ordinaryIncome, so each rate tier's width is measured
// against the combined stack, not against preferentialIncome alone.
func preferentialTax(store *tracer.Store, model *domain.ReturnModel, ordinaryIncome, preferentialIncome money.TracedValue) money.TracedValue {
	bp := constants.QDCGBreakpoints2025[model.FilingStatus]
	stackTop := store.Put(money.Sum("form1040tax.preferential.stackTop", ordinaryIncome, preferentialIncome))

	zeroTopLit := store.Put(money.Literal(bp.ZeroRateTop, "form1040tax.preferential.zeroTop", "0% rate breakpoint"))
	fifteenTopLit := store.Put(money.Literal(bp.FifteenRateTop, "form1040tax.preferential.fifteenTop", "15% rate breakpoint"))

	zeroTierTop := store.Put(money.MinV("form1040tax.preferential.zeroTierTop", stackTop, zeroTopLit))
	zeroTierWidthRaw := store.Put(money.SubV("form1040tax.preferential.zeroTierWidthRaw", zeroTierTop, ordinaryIncome))
	zeroTierWidth := store.Put(money.ClampZero("form1040tax.preferential.zeroTierWidth", zeroTierWidthRaw))

	fifteenTierTop := store.Put(money.MinV("form1040tax.preferential.fifteenTierTop", stackTop, fifteenTopLit))
	fifteenTierBottom := store.Put(money.MaxV("form1040tax.preferential.fifteenTierBottom", ordinaryIncome, zeroTierTop))
	fifteenTierWidthRaw := store.Put(money.SubV("form1040tax.preferential.fifteenTierWidthRaw", fifteenTierTop, fifteenTierBottom))
	fifteenTierWidth := store.Put(money.ClampZero("form1040tax.preferential.fifteenTierWidth", fifteenTierWidthRaw))
	fifteenTax := store.Put(money.Pct("form1040tax.preferential.fifteenTax", fifteenTierWidth, 1500, money.RoundHalfEven))

	twentyTierBottom := store.Put(money.MaxV("form1040tax.preferential.twentyTierBottom", ordinaryIncome, fifteenTierTop))
	twentyTierWidthRaw := store.Put(money.SubV("form1040tax.preferential.twentyTierWidthRaw", stackTop, twentyTierBottom))
	twentyTierWidth := store.Put(money.ClampZero("form1040tax.preferential.twentyTierWidth", twentyTierWidthRaw))
	twentyTax := store.Put(money.Pct("form1040tax.preferential.twentyTax", twentyTierWidth, 2000, money.RoundHalfEven))

	return store.Put(money.Sum("form1040tax.preferential.total", fifteenTax, twentyTax))
}

// Compute applies Form 1040 line 16. netCapitalGain is Schedule D's net
// gain (never a loss; the caller floors it at zero before calling), and
// qualifiedDividends is Form 1040 line 3a's total. Preferential income
// cannot exceed taxable income itself (the worksheet's own floor).
func Compute(store *tracer.Store, model *domain.ReturnModel, taxableIncome, qualifiedDividends, netCapitalGain money.TracedValue) Result {
	preferentialRaw := store.Put(money.Sum("form1040tax.preferentialRaw", qualifiedDividends, netCapitalGain))
	preferentialIncome := store.Put(money.MinV("form1040tax.preferentialIncome", preferentialRaw, taxableIncome))
	ordinaryIncome := store.Put(money.SubV("form1040tax.ordinaryIncome", taxableIncome, preferentialIncome))

	ordinaryTax := marginalTax(store, "form1040tax.ordinary", model, ordinaryIncome)
	prefTax := preferentialTax(store, model, ordinaryIncome, preferentialIncome)
	total := store.Put(money.Sum("form1040tax.total", ordinaryTax, prefTax))

	return Result{
		OrdinaryIncome:     ordinaryIncome,
		PreferentialIncome: preferentialIncome,
		OrdinaryTax:        ordinaryTax,
		PreferentialTax:    prefTax,
		TotalTax:           total,
	}
}
