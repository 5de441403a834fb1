// Package credits implements Form 1040's credit forms: Child Tax Credit /
// Additional CTC (Form 8812), education credits (Form 8863), dependent
// care (Form 2441), residential energy credits (Form 5695), the Saver's
// Credit (Form 8880), and the foreign tax credit (Form 1116). Each follows
// the same shape: a maximum credit, limited by tax liability, with a
// refundable residual where the form allows one.
package credits

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/dateutil"
	"github.com/form1040/taxengine/pkg/money"
)

// CTCResult is Form 8812's output: the nonrefundable CTC/ODC claimed
// against tax, plus the refundable Additional Child Tax Credit.
type CTCResult struct {
	QualifyingChildren int
	OtherDependents    int
	InitialCredit      money.TracedValue
	PhaseOut           money.TracedValue
	CreditAfterPhaseOut money.TracedValue
	NonrefundablePortion money.TracedValue // flows to Schedule 3 / line 19
	ACTC                money.TracedValue // flows to line 28
}

// isQualifyingChild applies the closed test: relationship in the
// qualifying-child set, age < 17 at year end, more than half the year
// lived with the taxpayer, SSN present, DOB present.
func isQualifyingChild(d domain.Dependent) bool {
	if !d.Relationship.IsQualifyingChildRelation() {
		return false
	}
	if !d.SSNPresent || d.DateOfBirth.IsZero() {
		return false
	}
	if d.MonthsLived <= 6 {
		return false
	}
	age := dateutil.Age(d.DateOfBirth, constants.TaxYearEnd)
	return age < 17
}

// isOtherDependent is any dependent with SSN and DOB present who isn't a
// qualifying child.
func isOtherDependent(d domain.Dependent) bool {
	return d.SSNPresent && !d.DateOfBirth.IsZero() && !isQualifyingChild(d)
}

// ComputeCTC applies Form 8812. agi is Form 1040 line 11; taxBeforeCredits
// is the tax liability CTC offsets against (regular tax plus AMT, before
// any credit is applied); earnedIncome is wages plus net SE earnings,
// for the ACTC earned-income floor.
func ComputeCTC(store *tracer.Store, model *domain.ReturnModel, agi, taxBeforeCredits, earnedIncome money.TracedValue) CTCResult {
	qc, od := 0, 0
	for _, d := range model.Dependents {
		if isQualifyingChild(d) {
			qc++
		} else if isOtherDependent(d) {
			od++
		}
	}

	qcAmount := store.Put(money.Literal(money.Cents(qc)*constants.CTCPerChild, "form8812.qcAmount", fmt.Sprintf("%d qualifying children x $2,200", qc)))
	odAmount := store.Put(money.Literal(money.Cents(od)*constants.ODCPerDependent, "form8812.odAmount", fmt.Sprintf("%d other dependents x $500", od)))
	initial := store.Put(money.Sum("form8812.initialCredit", qcAmount, odAmount))

	threshold := store.Put(money.Literal(constants.CTCPhaseOutThreshold[model.FilingStatus], "form8812.threshold", "filing-status phase-out threshold"))
	excessRaw := store.Put(money.SubV("form8812.excessRaw", agi, threshold))
	excess := store.Put(money.ClampZero("form8812.excess", excessRaw))
	// Phase-out steps in whole $1,000 increments of excess AGI, each
	// costing $50 of credit; any partial $1,000 of excess counts as a full
	// step (the excess is rounded up to the next $1,000).
	steps := excess.Amount / money.NewFromDollars(1000)
	if excess.Amount%money.NewFromDollars(1000) != 0 {
		steps++
	}
	phaseOut := store.Put(money.Literal(money.Cents(steps)*constants.CTCPhaseOutPerStep, "form8812.phaseOut", "$50 per $1,000 of excess AGI"))

	afterPhaseOutRaw := store.Put(money.SubV("form8812.afterPhaseOutRaw", initial, phaseOut))
	afterPhaseOut := store.Put(money.ClampZero("form8812.afterPhaseOut", afterPhaseOutRaw))

	nonrefundable := store.Put(money.MinV("form8812.nonrefundable", afterPhaseOut, taxBeforeCredits))

	remainingCreditRaw := store.Put(money.SubV("form8812.remainingCreditRaw", afterPhaseOut, nonrefundable))
	remainingCredit := store.Put(money.ClampZero("form8812.remainingCredit", remainingCreditRaw))

	refundableCap := store.Put(money.Literal(money.Cents(qc)*constants.ACTCRefundableCapPerChild, "form8812.refundableCap", fmt.Sprintf("%d qualifying children x $1,700", qc)))
	earnedFloor := store.Put(money.Literal(constants.ACTCEarnedIncomeFloor, "form8812.earnedFloor", "$2,500 earned-income floor"))
	earnedExcessRaw := store.Put(money.SubV("form8812.earnedExcessRaw", earnedIncome, earnedFloor))
	earnedExcess := store.Put(money.ClampZero("form8812.earnedExcess", earnedExcessRaw))
	earnedBasis := store.Put(money.Pct("form8812.earnedBasis", earnedExcess, constants.ACTCEarnedIncomeRateBps, money.RoundHalfEven))

	actcCandidate := store.Put(money.MinV("form8812.actcCandidate", refundableCap, earnedBasis))
	actc := store.Put(money.MinV("form8812.actc", actcCandidate, remainingCredit))

	return CTCResult{
		QualifyingChildren:   qc,
		OtherDependents:      od,
		InitialCredit:        initial,
		PhaseOut:             phaseOut,
		CreditAfterPhaseOut:  afterPhaseOut,
		NonrefundablePortion: nonrefundable,
		ACTC:                 actc,
	}
}
