package schedulec

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// SEResult is Schedule SE's short form (Section A), computed per owner and
// then combined, since the Social Security wage base offset (line 4a) is
// per filer.
type SEResult struct {
	PerOwner map[domain.DistributionOwner]OwnerSEResult
	Line6Total money.TracedValue // combined SE tax, both owners
	Line12DeductibleHalf money.TracedValue // combined, flows to Schedule 1
	Triggered bool
}

// OwnerSEResult is one filer's Schedule SE lines.
type OwnerSEResult struct {
	Line2NetEarnings money.TracedValue
	Line3            money.TracedValue
	Line4a           money.TracedValue
	Line4b           money.TracedValue
	Line5            money.TracedValue
	Line6            money.TracedValue
}

// ComputeSE sums each owner's net profits across businesses (losses floor
// at zero per owner), then applies the 92.35% factor, the
// Social Security wage-base offset against that owner's W-2 SS wages, and
// the 12.4%/2.9% split.
func ComputeSE(store *tracer.Store, model *domain.ReturnModel, businesses []BusinessResult) SEResult {
	netProfitByOwner := map[domain.DistributionOwner][]money.TracedValue{}
	for i, b := range businesses {
		netProfitByOwner[b.Owner] = append(netProfitByOwner[b.Owner], store.Put(money.Rebind(fmt.Sprintf("scheduleSE.netProfitRef.%s.%d", b.Owner, i), b.NetProfit)))
	}

	ssWagesByOwner := map[domain.DistributionOwner]money.Cents{}
	for _, w := range model.WageStatements {
		ssWagesByOwner[w.Owner] += w.Box3SSWages
	}

	perOwner := map[domain.DistributionOwner]OwnerSEResult{}
	var line6Terms, line12Terms []money.TracedValue
	triggered := false

	for _, owner := range []domain.DistributionOwner{domain.OwnerTaxpayer, domain.OwnerSpouse} {
		profits := netProfitByOwner[owner]
		if len(profits) == 0 {
			continue
		}
		prefix := fmt.Sprintf("scheduleSE.%s", owner)
		sum := store.Put(money.Sum(prefix+".sumProfits", profits...))
		line2 := store.Put(money.ClampZero(prefix+".line2", sum))
		line3 := store.Put(money.Pct(prefix+".line3", line2, constants.SENetEarningsFactorBps, money.RoundHalfEven))

		wageBaseRemaining := money.ClampZeroCents(money.Cents(constants.SSWageBase2025) - ssWagesByOwner[owner])
		remainingLit := store.Put(money.Literal(wageBaseRemaining, prefix+".wageBaseRemaining", "SS wage base minus W-2 SS wages"))
		line4a := store.Put(money.MinV(prefix+".line4a", line3, remainingLit))
		line4b := store.Put(money.Pct(prefix+".line4b", line4a, constants.SESocialSecurityRateBps, money.RoundHalfEven))
		line5 := store.Put(money.Pct(prefix+".line5", line3, constants.SEMedicareRateBps, money.RoundHalfEven))
		line6 := store.Put(money.Sum(prefix+".line6", line4b, line5))
		line12 := store.Put(money.Mul(prefix+".line12", line6, 1, 2, money.RoundHalfEven))

		perOwner[owner] = OwnerSEResult{Line2NetEarnings: line2, Line3: line3, Line4a: line4a, Line4b: line4b, Line5: line5, Line6: line6}
		line6Terms = append(line6Terms, line6)
		line12Terms = append(line12Terms, line12)
		if line6.Amount > 0 {
			triggered = true
		}
	}

	return SEResult{
		PerOwner:             perOwner,
		Line6Total:           store.Put(money.Sum("scheduleSE.line6Total", line6Terms...)),
		Line12DeductibleHalf: store.Put(money.Sum("scheduleSE.line12Total", line12Terms...)),
		Triggered:            triggered,
	}
}
