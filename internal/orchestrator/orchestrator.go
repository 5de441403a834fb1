// Package orchestrator sequences Form 1040 lines 1a through 37 in
// dependency order, composing every schedule package into one pass:
// income block, AGI, the deduction and QBI decisions, taxable income,
// regular tax, credits, other taxes, payments, and the final
// refund-or-owed reconciliation. A single ordered function builds each
// intermediate result and threads it into the next, rather than a
// dependency-injected DAG scheduler.
package orchestrator

import (
	"fmt"

	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/schedules/addlmedicare"
	"github.com/form1040/taxengine/internal/schedules/amt"
	"github.com/form1040/taxengine/internal/schedules/credits"
	"github.com/form1040/taxengine/internal/schedules/form1040tax"
	"github.com/form1040/taxengine/internal/schedules/hsa"
	"github.com/form1040/taxengine/internal/schedules/niit"
	"github.com/form1040/taxengine/internal/schedules/qbi"
	"github.com/form1040/taxengine/internal/schedules/schedulea"
	"github.com/form1040/taxengine/internal/schedules/scheduleb"
	"github.com/form1040/taxengine/internal/schedules/schedulec"
	"github.com/form1040/taxengine/internal/schedules/scheduled"
	"github.com/form1040/taxengine/internal/schedules/schedulee"
	"github.com/form1040/taxengine/internal/schedules/socialsecurity"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/internal/trigger"
	"github.com/form1040/taxengine/pkg/money"
)

// Result is every Form 1040 line the engine computes, plus every
// supporting schedule's own result for explainability and state-return
// apportionment.
type Result struct {
	// Income block
	Line1zWages               money.TracedValue
	Line2aTaxExemptInterest    money.TracedValue
	Line2bTaxableInterest      money.TracedValue
	Line3aQualifiedDividends   money.TracedValue
	Line3bOrdinaryDividends    money.TracedValue
	Line4aIRADistributions     money.TracedValue
	Line4bTaxableIRA           money.TracedValue
	Line5aPensions             money.TracedValue
	Line5bTaxablePensions      money.TracedValue
	Line6aSocialSecurity       money.TracedValue
	Line6bTaxableSocialSecurity money.TracedValue
	Line7CapitalGain           money.TracedValue
	Line8OtherIncome           money.TracedValue
	Line9TotalIncome           money.TracedValue

	Line10Adjustments money.TracedValue
	Line11AGI         money.TracedValue

	Line12Deduction   money.TracedValue
	ItemizedElected   bool
	Line13QBIDeduction money.TracedValue
	Line15TaxableIncome money.TracedValue

	Line16Tax money.TracedValue
	Line17AMT money.TracedValue
	Line18    money.TracedValue

	Line19CTCNonrefundable money.TracedValue
	Line20Schedule3        money.TracedValue
	Line21                 money.TracedValue
	Line22                 money.TracedValue

	Line23OtherTaxes money.TracedValue
	Line24TotalTax   money.TracedValue

	Line25Withholding money.TracedValue
	Line26Payments    money.TracedValue
	Line28ACTC        money.TracedValue
	Line29AOTCRefundable money.TracedValue
	Line32RefundableCredits money.TracedValue
	Line33TotalPayments money.TracedValue

	Line34Overpaid money.TracedValue
	Line37Owed     money.TracedValue

	ScheduleA   schedulea.Result
	ScheduleB   scheduleb.Result
	ScheduleD   scheduled.Result
	ScheduleC   []schedulec.BusinessResult
	ScheduleSE  schedulec.SEResult
	ScheduleE   []schedulee.PropertyResult
	SocialSecurity socialsecurity.Result
	HSA         hsa.Result
	AddlMedicare addlmedicare.Result
	NIIT        niit.Result
	AMT         amt.Result
	QBI         qbi.Result
	CTC         credits.CTCResult
	Education   credits.EducationResult
	DependentCare credits.DependentCareResult
	Energy      credits.EnergyResult
	SaverCredit credits.SaverCreditResult
	ForeignTax  credits.ForeignTaxResult

	Triggers trigger.Result
}

// Compute runs the full Form 1040 schedule orchestration against model,
// recording every intermediate value in store.
func Compute(store *tracer.Store, model *domain.ReturnModel) Result {
	wages := incomeBlockWages(store, model)
	interestExempt, scheduleBResult := incomeBlockInterestAndDividends(store, model)
	qualifiedDividends := sumDividendField(store, model, "box1b", "form1040.line3a")
	capGainDistributions := sumDividendField(store, model, "box2a", "form1040.capGainDistributions")
	ira4a, ira4b, pension5a, pension5b := incomeBlockDistributions(store, model)

	ssResult := socialsecurity.Compute(store, model,
		preSocialSecurityAGI(store, wages, scheduleBResult, ira4b, pension5b),
		interestExempt)

	scheduleDResult := scheduled.Compute(store, model, capGainDistributions)
	var line7 money.TracedValue
	if scheduleDResult.Triggered {
		line7 = store.Put(money.Rebind("form1040.line7", scheduleDResult.Line21))
	} else {
		line7 = store.Put(money.Rebind("form1040.line7", capGainDistributions))
	}

	businesses := schedulec.ComputeAll(store, model)
	seResult := schedulec.ComputeSE(store, model, businesses)
	rentals, scheduleETotal := schedulee.ComputeAll(store, model)

	hsaResult := hsa.Compute(store, model)
	line8 := schedule1AdditionalIncome(store, model, businesses, scheduleETotal, hsaResult.TaxableDistribution)

	line9 := store.Put(money.Sum("form1040.line9", wages, scheduleBResult.Line4Interest,
		scheduleBResult.Line6Dividends, ira4b, pension5b, ssResult.TaxableBenefits, line7, line8))

	seHealthInsurance := store.Put(money.Literal(model.SEHealthInsurancePremiums, "schedule1.seHealthInsurance", "seHealthInsurancePremiums"))
	studentLoanInterest := store.Put(money.Literal(model.StudentLoanInterestPaid, "schedule1.studentLoanInterest", "studentLoanInterestPaid"))
	educatorExpenses := store.Put(money.Literal(model.EducatorExpenses, "schedule1.educatorExpenses", "educatorExpenses"))
	iraDeduction := iraDeductionAdjustment(store, model)

	line10 := store.Put(money.Sum("form1040.line10", iraDeduction, hsaResult.Deduction,
		studentLoanInterest, educatorExpenses, seResult.Line12DeductibleHalf, seHealthInsurance))

	line9minus10 := store.Put(money.SubV("form1040.line11raw", line9, line10))
	line11 := store.Put(money.ClampZero("form1040.line11", line9minus10))

	qualDivPlusNetCapGain := store.Put(money.Sum("orchestrator.qualDivPlusNetCapGain", qualifiedDividends,
		store.Put(money.ClampZero("form1040.line7Floored", line7))))

	netInvestmentIncomeRaw := store.Put(money.Sum("orchestrator.niiRaw", scheduleBResult.Line4Interest,
		scheduleBResult.Line6Dividends, store.Put(money.ClampZero("orchestrator.nii.capGainFloored", line7))))
	netInvestmentIncome := store.Put(money.ClampZero("orchestrator.nii", netInvestmentIncomeRaw))

	scheduleAResult := schedulea.Compute(store, model, line11, netInvestmentIncome)
	standardDeduction := computeStandardDeduction(store, model)
	itemizedElected := model.DeductionMethod == domain.DeductionItemized && scheduleAResult.Line17Total.Amount > standardDeduction.Amount
	line12 := standardDeduction
	if itemizedElected {
		line12 = store.Put(money.Rebind("form1040.line12", scheduleAResult.Line17Total))
	}

	line11minus12 := store.Put(money.SubV("orchestrator.taxableBeforeQBI", line11, line12))
	taxableIncomeBeforeQBI := store.Put(money.ClampZero("orchestrator.taxableBeforeQBIFloored", line11minus12))

	qbiSources := qbi.Sources(store, model, businesses, rentals)
	qbiResult := qbi.Compute(store, model, qbiSources, taxableIncomeBeforeQBI, qualDivPlusNetCapGain)
	line13 := qbiResult.Deduction

	line14 := store.Put(money.Sum("form1040.line14", line12, line13))
	line15raw := store.Put(money.SubV("form1040.line15raw", line11, line14))
	line15 := store.Put(money.ClampZero("form1040.line15", line15raw))

	taxResult := form1040tax.Compute(store, model, line15, qualifiedDividends, store.Put(money.ClampZero("orchestrator.taxNetCapGain", line7)))
	line16 := store.Put(money.RoundToWholeDollars("form1040.line16", taxResult.TotalTax, money.RoundHalfUp))

	saltAddback := store.Put(money.Zero("form6251.saltAddbackStandard", "standard deduction claimed, no SALT to add back"))
	if itemizedElected {
		saltAddback = store.Put(money.Rebind("form6251.saltAddback", scheduleAResult.Line7SALT))
	}
	amtResult := amt.Compute(store, model, line15, saltAddback, line16)
	line17 := amtResult.AMT
	line18 := store.Put(money.Sum("form1040.line18", line16, line17))

	earnedTerms := []money.TracedValue{wages}
	for _, owner := range []domain.DistributionOwner{domain.OwnerTaxpayer, domain.OwnerSpouse} {
		if o, ok := seResult.PerOwner[owner]; ok {
			earnedTerms = append(earnedTerms, o.Line2NetEarnings)
		}
	}
	earnedIncome := store.Put(money.Sum("orchestrator.earnedIncome", earnedTerms...))
	ctcResult := credits.ComputeCTC(store, model, line11, line18, earnedIncome)
	line19 := ctcResult.NonrefundablePortion

	educationResult := credits.ComputeEducation(store, model)
	dependentCareResult := credits.ComputeDependentCare(store, model, earnedIncome)
	energyResult := credits.ComputeEnergy(store, model)
	saverCreditResult := credits.ComputeSaverCredit(store, model, line11)
	dividendForeignTax := sumDividendField(store, model, "box7", "form1116.dividendForeignTax")
	remainingTaxAfterCTC := store.Put(money.SubV("form1116.remainingTaxAfterCTC", line18, line19))
	foreignTaxResult := credits.ComputeForeignTax(store, model, dividendForeignTax, remainingTaxAfterCTC, money.FullRatio())

	line20 := store.Put(money.Sum("form1040.line20", educationResult.TotalNonrefundable,
		dependentCareResult.Credit, energyResult.Credit, saverCreditResult.Credit, foreignTaxResult.Credit))

	line21 := store.Put(money.Sum("form1040.line21", line19, line20))
	line22raw := store.Put(money.SubV("form1040.line22raw", line18, line21))
	line22 := store.Put(money.ClampZero("form1040.line22", line22raw))

	medicareWages := sumMedicareWages(store, model)
	seEarnings := store.Put(money.Sum("orchestrator.seEarnings", seMedicareEarningsTerms(seResult)...))
	addlMedicareResult := addlmedicare.Compute(store, model, medicareWages, seEarnings)
	niitResult := niit.Compute(store, model, netInvestmentIncome, line11)

	// AMT already folds into line17/line18; line23's Schedule 2 Part II
	// total excludes it to avoid double-counting against line24.
	line23 := store.Put(money.Sum("form1040.line23", seResult.Line6Total,
		addlMedicareResult.Tax, niitResult.Tax, hsaResult.ExcessPenalty, hsaResult.DistributionPenalty))

	line24 := store.Put(money.Sum("form1040.line24", line22, line23))

	line25 := withholdingTotal(store, model)
	estimatedPayments := store.Put(money.Sum("form1040.estimatedPayments", estimatedPaymentTerms(store, model)...))
	priorYearApplied := store.Put(money.Literal(model.PriorYearOverpaymentApplied, "form1040.priorYearApplied", "priorYearOverpaymentApplied"))
	line26 := store.Put(money.Sum("form1040.line26", estimatedPayments, priorYearApplied))

	line28 := ctcResult.ACTC
	line29 := educationResult.AOTCRefundable
	line32 := store.Put(money.Sum("form1040.line32", line28, line29))
	line33 := store.Put(money.Sum("form1040.line33", line25, line26, line32))

	overpaidRaw := store.Put(money.SubV("form1040.line34raw", line33, line24))
	line34 := store.Put(money.ClampZero("form1040.line34", overpaidRaw))
	owedRaw := store.Put(money.SubV("form1040.line37raw", line24, line33))
	line37 := store.Put(money.ClampZero("form1040.line37", owedRaw))

	triggers := trigger.Evaluate(trigger.Inputs{
		ItemizedElected:                  itemizedElected,
		ScheduleBRequired:                scheduleBResult.Required,
		HasSaleTransactionOrCapGainDist:  len(model.SaleTransactions) > 0 || capGainDistributions.Amount > 0,
		Form8949HasCategoryTransactions:  len(model.SaleTransactions) > 0,
		Schedule1AdjustmentNonZero:       line10.Amount > 0,
		Schedule1AdditionalIncomeExists:  line8.Amount != 0,
		Schedule2LineItemsPositive:       line23.Amount > 0 || amtResult.Triggered,
		Schedule3Line20Positive:          line20.Amount > 0,
		RefundableAOTCPositive:           line29.Amount > 0,
		CTCNonrefundablePlusACTCPositive: line19.Amount > 0 || line28.Amount > 0,
		EducationCreditPositive:          educationResult.TotalNonrefundable.Amount > 0 || line29.Amount > 0,
		AMTPositive:                      amtResult.Triggered,
		HSADescriptorPresent:             model.HSA != nil,
		QBIUsesSimplifiedPath:            !qbiResult.UsedForm8995A,
		QBIApplies:                       len(qbiSources) > 0,
		BusinessesNonEmpty:               len(model.Businesses) > 0,
		AggregateSETaxPositive:           seResult.Triggered,
		RentalPropertiesNonEmpty:         len(model.Rentals) > 0,
		HasHomeOfficeRegularMethod:       hasRegularMethodHomeOffice(model),
		HomeOfficeDeductionPositive:      anyHomeOfficeDeductionPositive(businesses),
		ForeignTaxApplicable:             dividendForeignTax.Amount > 0 || model.Credits.ForeignTaxPaidOther > 0,
		DirectForeignTaxCreditElected:    model.DirectForeignTaxCreditElection,
	})

	return Result{
		Line1zWages:                wages,
		Line2aTaxExemptInterest:    interestExempt,
		Line2bTaxableInterest:      scheduleBResult.Line4Interest,
		Line3aQualifiedDividends:   qualifiedDividends,
		Line3bOrdinaryDividends:    scheduleBResult.Line6Dividends,
		Line4aIRADistributions:     ira4a,
		Line4bTaxableIRA:           ira4b,
		Line5aPensions:             pension5a,
		Line5bTaxablePensions:      pension5b,
		Line6aSocialSecurity:       ssResult.GrossBenefits,
		Line6bTaxableSocialSecurity: ssResult.TaxableBenefits,
		Line7CapitalGain:           line7,
		Line8OtherIncome:           line8,
		Line9TotalIncome:           line9,
		Line10Adjustments:          line10,
		Line11AGI:                  line11,
		Line12Deduction:            line12,
		ItemizedElected:            itemizedElected,
		Line13QBIDeduction:         line13,
		Line15TaxableIncome:        line15,
		Line16Tax:                  line16,
		Line17AMT:                  line17,
		Line18:                     line18,
		Line19CTCNonrefundable:     line19,
		Line20Schedule3:            line20,
		Line21:                     line21,
		Line22:                     line22,
		Line23OtherTaxes:           line23,
		Line24TotalTax:             line24,
		Line25Withholding:          line25,
		Line26Payments:             line26,
		Line28ACTC:                 line28,
		Line29AOTCRefundable:       line29,
		Line32RefundableCredits:    line32,
		Line33TotalPayments:        line33,
		Line34Overpaid:             line34,
		Line37Owed:                 line37,

		ScheduleA:      scheduleAResult,
		ScheduleB:      scheduleBResult,
		ScheduleD:      scheduleDResult,
		ScheduleC:      businesses,
		ScheduleSE:     seResult,
		ScheduleE:      rentals,
		SocialSecurity: ssResult,
		HSA:            hsaResult,
		AddlMedicare:   addlMedicareResult,
		NIIT:           niitResult,
		AMT:            amtResult,
		QBI:            qbiResult,
		CTC:            ctcResult,
		Education:      educationResult,
		DependentCare:  dependentCareResult,
		Energy:         energyResult,
		SaverCredit:    saverCreditResult,
		ForeignTax:     foreignTaxResult,
		Triggers:       triggers,
	}
}

func incomeBlockWages(store *tracer.Store, model *domain.ReturnModel) money.TracedValue {
	var terms []money.TracedValue
	for i, w := range model.WageStatements {
		id := fmt.Sprintf("form1040.line1.wage.%d", i)
		terms = append(terms, store.Put(money.Input(w.Box1Wages, id, fmt.Sprintf("wageStatements[%d].box1Wages", i))))
	}
	return store.Put(money.Sum("form1040.line1z", terms...))
}

func sumMedicareWages(store *tracer.Store, model *domain.ReturnModel) money.TracedValue {
	var terms []money.TracedValue
	for i, w := range model.WageStatements {
		id := fmt.Sprintf("orchestrator.wage.box5.%d", i)
		terms = append(terms, store.Put(money.Input(w.Box5MedicareWages, id, fmt.Sprintf("wageStatements[%d].box5MedicareWages", i))))
	}
	return store.Put(money.Sum("orchestrator.wage.box5.total", terms...))
}

func incomeBlockInterestAndDividends(store *tracer.Store, model *domain.ReturnModel) (taxExempt money.TracedValue, sb scheduleb.Result) {
	var exemptTerms []money.TracedValue
	for i, stmt := range model.InterestStatements {
		id := fmt.Sprintf("form1040.line2a.interestExempt.%d", i)
		exemptTerms = append(exemptTerms, store.Put(money.Input(stmt.Box8TaxExemptInterest, id, fmt.Sprintf("interestStatements[%d].box8TaxExemptInterest", i))))
	}
	for i, stmt := range model.DividendStatements {
		id := fmt.Sprintf("form1040.line2a.dividendExempt.%d", i)
		exemptTerms = append(exemptTerms, store.Put(money.Input(stmt.Box11ExemptInterestDividends, id, fmt.Sprintf("dividendStatements[%d].box11ExemptInterestDividends", i))))
	}
	taxExempt = store.Put(money.Sum("form1040.line2a", exemptTerms...))
	sb = scheduleb.Compute(store, model)
	return
}

func sumDividendField(store *tracer.Store, model *domain.ReturnModel, field, nodeID string) money.TracedValue {
	var terms []money.TracedValue
	for i, stmt := range model.DividendStatements {
		id := fmt.Sprintf("%s.%d", nodeID, i)
		var amt domain.Cents
		var ref string
		switch field {
		case "box1b":
			amt, ref = stmt.Box1bQualifiedDividends, fmt.Sprintf("dividendStatements[%d].box1bQualifiedDividends", i)
		case "box2a":
			amt, ref = stmt.Box2aCapitalGainDistributions, fmt.Sprintf("dividendStatements[%d].box2aCapitalGainDistributions", i)
		case "box7":
			amt, ref = stmt.Box7ForeignTaxPaid, fmt.Sprintf("dividendStatements[%d].box7ForeignTaxPaid", i)
		}
		terms = append(terms, store.Put(money.Input(amt, id, ref)))
	}
	return store.Put(money.Sum(nodeID+".total", terms...))
}

func incomeBlockDistributions(store *tracer.Store, model *domain.ReturnModel) (ira4a, ira4b, pension5a, pension5b money.TracedValue) {
	var ira4aTerms, ira4bTerms, pension5aTerms, pension5bTerms []money.TracedValue
	for i, r := range model.RetirementDistributions {
		grossID := fmt.Sprintf("form1040.retirement.%d.gross", i)
		taxableID := fmt.Sprintf("form1040.retirement.%d.taxable", i)
		gross := store.Put(money.Input(r.Box1GrossDistribution, grossID, fmt.Sprintf("retirementDistributions[%d].box1GrossDistribution", i)))
		taxable := store.Put(money.Input(r.Box2aTaxableAmount, taxableID, fmt.Sprintf("retirementDistributions[%d].box2aTaxableAmount", i)))
		if r.IRAOrSEP {
			ira4aTerms = append(ira4aTerms, gross)
			ira4bTerms = append(ira4bTerms, taxable)
		} else {
			pension5aTerms = append(pension5aTerms, gross)
			pension5bTerms = append(pension5bTerms, taxable)
		}
	}
	ira4a = store.Put(money.Sum("form1040.line4a", ira4aTerms...))
	ira4b = store.Put(money.Sum("form1040.line4b", ira4bTerms...))
	pension5a = store.Put(money.Sum("form1040.line5a", pension5aTerms...))
	pension5b = store.Put(money.Sum("form1040.line5b", pension5bTerms...))
	return
}

// preSocialSecurityAGI approximates the worksheet's "all other income"
// input as wages, taxable interest, ordinary dividends, and taxable IRA
// and pension distributions. Capital gain (line 7), Schedule 1 other
// income (line 8), and the line 10 adjustments are not included.
func preSocialSecurityAGI(store *tracer.Store, wages money.TracedValue, sb scheduleb.Result, ira4b, pension5b money.TracedValue) money.TracedValue {
	return store.Put(money.Sum("socialsecurity.otherAGI", wages, sb.Line4Interest, sb.Line6Dividends, ira4b, pension5b))
}

// schedule1AdditionalIncome sums Schedule C net profit, Schedule E net
// income, K-1 ordinary income, 1099-MISC other income, and the taxable
// HSA distribution for Form 1040 line 8.
func schedule1AdditionalIncome(store *tracer.Store, model *domain.ReturnModel, businesses []schedulec.BusinessResult, scheduleETotal, hsaTaxable money.TracedValue) money.TracedValue {
	var terms []money.TracedValue
	for _, b := range businesses {
		terms = append(terms, b.NetProfit)
	}
	terms = append(terms, scheduleETotal)
	for i, k := range model.K1Entries {
		id := fmt.Sprintf("schedule1.k1.%d", i)
		terms = append(terms, store.Put(money.Literal(k.OrdinaryIncome, id, fmt.Sprintf("k1Entries[%d].ordinaryIncome", i))))
	}
	for i, m := range model.MiscellaneousStatements {
		id := fmt.Sprintf("schedule1.misc.%d", i)
		terms = append(terms, store.Put(money.Input(m.Box3OtherIncome, id, fmt.Sprintf("miscellaneousStatements[%d].box3OtherIncome", i))))
	}
	terms = append(terms, hsaTaxable)
	return store.Put(money.Sum("form1040.line8", terms...))
}

// iraDeductionAdjustment sums every non-Roth IRA contribution as fully
// deductible. The MAGI-based phase-out for filers covered by an employer
// plan (Form 1040 Instructions IRA Deduction Worksheet) is not modeled;
// every traditional contribution is treated as deductible in full, the
// same light-touch treatment the Saver's Credit and dependent-care rate
// already apply to narrower worksheets this engine doesn't expand.
func iraDeductionAdjustment(store *tracer.Store, model *domain.ReturnModel) money.TracedValue {
	var terms []money.TracedValue
	for i, c := range model.IRAContributions {
		if c.Roth {
			continue
		}
		id := fmt.Sprintf("schedule1.ira.%d", i)
		terms = append(terms, store.Put(money.Literal(c.Amount, id, fmt.Sprintf("iraContributions[%d].amount", i))))
	}
	return store.Put(money.Sum("schedule1.iraDeduction", terms...))
}

// computeStandardDeduction applies the filing-status base, the age/blind
// add-ons, and the dependent-filer floor rule.
func computeStandardDeduction(store *tracer.Store, model *domain.ReturnModel) money.TracedValue {
	base := store.Put(money.Literal(constants.StandardDeduction2025[model.FilingStatus], "standardDeduction.base", "filing-status base standard deduction"))

	married := model.FilingStatus == domain.MarriedFilingJointly || model.FilingStatus == domain.MarriedFilingSeparately || model.FilingStatus == domain.QualifyingSurvivingSpouse
	addOnPer := constants.AgeBlindAddOnUnmarried
	if married {
		addOnPer = constants.AgeBlindAddOnMarried
	}
	boxes := 0
	if model.AgeBlind.TaxpayerAge65OrOlder {
		boxes++
	}
	if model.AgeBlind.TaxpayerBlind {
		boxes++
	}
	if model.AgeBlind.SpouseAge65OrOlder {
		boxes++
	}
	if model.AgeBlind.SpouseBlind {
		boxes++
	}
	addOnTotal := store.Put(money.Literal(addOnPer*money.Cents(boxes), "standardDeduction.ageBlindAddOn", "age/blind add-on boxes checked"))

	if !model.CanBeClaimedAsDependent {
		return store.Put(money.Sum("standardDeduction.total", base, addOnTotal))
	}

	earnedIncome := incomeBlockWages(store, model)
	floor := store.Put(money.Literal(constants.DependentStandardDeductionFloor, "standardDeduction.dependentFloor", "dependent-filer floor"))
	addOn := store.Put(money.Literal(constants.DependentEarnedIncomeAddOn, "standardDeduction.dependentEarnedIncomeAddOn", "$450 add-on"))
	earnedPlusAddOn := store.Put(money.Sum("standardDeduction.dependentEarnedPlusAddOn", earnedIncome, addOn))
	dependentAmount := store.Put(money.MaxV("standardDeduction.dependentAmount", floor, earnedPlusAddOn))
	normalAmount := store.Put(money.Sum("standardDeduction.normalAmount", base, addOnTotal))
	capped := store.Put(money.MinV("standardDeduction.dependentCapped", dependentAmount, normalAmount))
	return capped
}

func withholdingTotal(store *tracer.Store, model *domain.ReturnModel) money.TracedValue {
	var terms []money.TracedValue
	for i, w := range model.WageStatements {
		terms = append(terms, store.Put(money.Input(w.Box2FederalWithholding, fmt.Sprintf("withholding.wage.%d", i), fmt.Sprintf("wageStatements[%d].box2FederalWithholding", i))))
	}
	for i, s := range model.InterestStatements {
		terms = append(terms, store.Put(money.Input(s.Box4FederalWithholding, fmt.Sprintf("withholding.interest.%d", i), fmt.Sprintf("interestStatements[%d].box4FederalWithholding", i))))
	}
	for i, s := range model.DividendStatements {
		terms = append(terms, store.Put(money.Input(s.Box4FederalWithholding, fmt.Sprintf("withholding.dividend.%d", i), fmt.Sprintf("dividendStatements[%d].box4FederalWithholding", i))))
	}
	for i, s := range model.RetirementDistributions {
		terms = append(terms, store.Put(money.Input(s.Box4FederalWithholding, fmt.Sprintf("withholding.retirement.%d", i), fmt.Sprintf("retirementDistributions[%d].box4FederalWithholding", i))))
	}
	for i, s := range model.MiscellaneousStatements {
		terms = append(terms, store.Put(money.Input(s.Box4FederalWithholding, fmt.Sprintf("withholding.misc.%d", i), fmt.Sprintf("miscellaneousStatements[%d].box4FederalWithholding", i))))
	}
	return store.Put(money.Sum("form1040.line25", terms...))
}

func estimatedPaymentTerms(store *tracer.Store, model *domain.ReturnModel) []money.TracedValue {
	var terms []money.TracedValue
	for i, p := range model.EstimatedTaxPayments {
		terms = append(terms, store.Put(money.Input(p, fmt.Sprintf("form1040.estimatedPayment.%d", i), fmt.Sprintf("estimatedTaxPayments[%d]", i))))
	}
	return terms
}

// seMedicareEarningsTerms collects each owner's Schedule SE line 3 (net
// earnings x 92.35%, uncapped by the Social Security wage base), the
// figure Form 8959 combines with Medicare wages, not the SE tax itself.
func seMedicareEarningsTerms(seResult schedulec.SEResult) []money.TracedValue {
	var terms []money.TracedValue
	for _, owner := range seResult.PerOwner {
		terms = append(terms, owner.Line3)
	}
	return terms
}

func hasRegularMethodHomeOffice(model *domain.ReturnModel) bool {
	for _, b := range model.Businesses {
		if b.HomeOffice != nil && b.HomeOffice.Method == domain.HomeOfficeRegular {
			return true
		}
	}
	return false
}

func anyHomeOfficeDeductionPositive(businesses []schedulec.BusinessResult) bool {
	for _, b := range businesses {
		if b.HomeOfficeDeduction.Amount > 0 {
			return true
		}
	}
	return false
}
