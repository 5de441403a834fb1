package credits

import (
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// ForeignTaxResult is the foreign tax credit: either a direct credit for
// the full amount paid, whenever DirectForeignTaxCreditElection is set
// (no dollar threshold is checked), or Form 1116's limited credit.
type ForeignTaxResult struct {
	DirectElection bool
	ForeignTaxPaid money.TracedValue
	LimitationRatio money.Ratio
	Limitation     money.TracedValue
	Credit         money.TracedValue // flows to Schedule 3
}

// ComputeForeignTax sums the caller's 1099-DIV foreign tax total
// (dividendForeignTax) and the return-level other-foreign-tax field. When
// DirectForeignTaxCreditElection is set, the full amount is creditable
// without filing Form 1116; otherwise the credit is limited to US tax
// liability times (foreign-source taxable income / total taxable
// income), the caller-supplied limitationRatio.
func ComputeForeignTax(store *tracer.Store, model *domain.ReturnModel, dividendForeignTax money.TracedValue, taxBeforeCredits money.TracedValue, limitationRatio money.Ratio) ForeignTaxResult {
	otherForeignTax := store.Put(money.Literal(model.Credits.ForeignTaxPaidOther, "form1116.otherForeignTax", "credits.foreignTaxPaidOther"))
	total := store.Put(money.Sum("form1116.totalForeignTax", dividendForeignTax, otherForeignTax))

	if model.DirectForeignTaxCreditElection {
		credit := store.Put(money.Rebind("form1116.credit", total))
		return ForeignTaxResult{
			DirectElection:  true,
			ForeignTaxPaid:  total,
			LimitationRatio: money.FullRatio(),
			Limitation:      credit,
			Credit:          credit,
		}
	}

	limitation := store.Put(money.ApplyRatio("form1116.limitation", taxBeforeCredits, limitationRatio))
	credit := store.Put(money.MinV("form1116.credit", total, limitation))

	return ForeignTaxResult{
		DirectElection:  false,
		ForeignTaxPaid:  total,
		LimitationRatio: limitationRatio,
		Limitation:      limitation,
		Credit:          credit,
	}
}
