// Package constants holds every 2025 threshold, rate, bracket, and limit
// the schedules apply. Keeping them in one place, hardcoding a single
// named tax year's figures rather than a generic rate-table loader, means
// a future tax year is a constants-only edit.
package constants

import (
	"time"

	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/pkg/money"
)

// TaxYearEnd is the reference date age tests (CTC qualifying-child age,
// standard-deduction age-65 add-on) measure against for tax year 2025.
var TaxYearEnd = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

// TaxBracket is one marginal-rate rung. RateBps is basis points (750 ==
// 7.5%); Bracket application always passes through money.Pct.
type TaxBracket struct {
	UpTo    money.Cents // exclusive upper bound; the top bracket uses MaxCents
	RateBps int64
}

const MaxCents = money.Cents(1<<62 - 1)

// FederalBrackets2025 gives the ordinary-rate ladder by filing status.
var FederalBrackets2025 = map[domain.FilingStatus][]TaxBracket{
	domain.Single: {
		{money.NewFromDollars(11925), 1000},
		{money.NewFromDollars(48475), 1200},
		{money.NewFromDollars(103350), 2200},
		{money.NewFromDollars(197300), 2400},
		{money.NewFromDollars(250525), 3200},
		{money.NewFromDollars(626350), 3500},
		{MaxCents, 3700},
	},
	domain.MarriedFilingJointly: {
		{money.NewFromDollars(23850), 1000},
		{money.NewFromDollars(96950), 1200},
		{money.NewFromDollars(206700), 2200},
		{money.NewFromDollars(394600), 2400},
		{money.NewFromDollars(501050), 3200},
		{money.NewFromDollars(751600), 3500},
		{MaxCents, 3700},
	},
	domain.MarriedFilingSeparately: {
		{money.NewFromDollars(11925), 1000},
		{money.NewFromDollars(48475), 1200},
		{money.NewFromDollars(103350), 2200},
		{money.NewFromDollars(197300), 2400},
		{money.NewFromDollars(250525), 3200},
		{money.NewFromDollars(375800), 3500},
		{MaxCents, 3700},
	},
	domain.HeadOfHousehold: {
		{money.NewFromDollars(17000), 1000},
		{money.NewFromDollars(64850), 1200},
		{money.NewFromDollars(103350), 2200},
		{money.NewFromDollars(197300), 2400},
		{money.NewFromDollars(250500), 3200},
		{money.NewFromDollars(626350), 3500},
		{MaxCents, 3700},
	},
}

func init() {
	FederalBrackets2025[domain.QualifyingSurvivingSpouse] = FederalBrackets2025[domain.MarriedFilingJointly]
}

// StandardDeduction2025 by filing status, before any age/blind add-on.
var StandardDeduction2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(15000),
	domain.MarriedFilingJointly:     money.NewFromDollars(31500),
	domain.MarriedFilingSeparately:  money.NewFromDollars(15750),
	domain.HeadOfHousehold:          money.NewFromDollars(22500),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(31500),
}

// AgeBlindAddOn2025: each box (taxpayer 65+, taxpayer blind, spouse 65+,
// spouse blind) adds this amount; married filers (mfj/mfs/qw) use the
// married figure, single/hoh use the unmarried figure.
const (
	AgeBlindAddOnMarried   = money.Cents(155000) // $1,550
	AgeBlindAddOnUnmarried = money.Cents(195000) // $1,950
)

// DependentStandardDeductionFloor and the "earned income + 450" add are
// the dependent-filer standard-deduction rule.
const (
	DependentStandardDeductionFloor = money.Cents(135000) // $1,350
	DependentEarnedIncomeAddOn      = money.Cents(45000)  // $450
)

// SALTCap2025 is the itemized state-and-local-tax cap. MFS is halved.
// Phase-out begins at the given AGI threshold, reducing the cap by 30%
// of AGI above threshold, floored at the stated minimum.
const (
	SALTCap2025            = money.Cents(4000000) // $40,000
	SALTCap2025MFS          = money.Cents(2000000) // $20,000
	SALTFloor2025           = money.Cents(1000000) // $10,000
	SALTFloor2025MFS        = money.Cents(500000)  // $5,000
	SALTPhaseOutThreshold   = money.Cents(50000000) // $500,000
	SALTPhaseOutThresholdMFS = money.Cents(25000000) // $250,000
	SALTPhaseOutRateBps     = int64(3000)            // 30% of excess AGI
)

// MedicalDeductionFloorBps is the 7.5% AGI floor on Schedule A medical
// expenses.
const MedicalDeductionFloorBps = int64(750)

// Charitable contribution AGI caps.
const (
	CharityCashCapBps    = int64(6000) // 60% AGI
	CharityNonCashCapBps = int64(3000) // 30% AGI
)

// Post-TCJA mortgage acquisition debt limit, above which interest is
// prorated.
var MortgageDebtLimit = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(750000),
	domain.MarriedFilingJointly:     money.NewFromDollars(750000),
	domain.MarriedFilingSeparately:  money.NewFromDollars(375000),
	domain.HeadOfHousehold:          money.NewFromDollars(750000),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(750000),
}

// ScheduleBThreshold2025 is the strict-greater-than trigger.
const ScheduleBThreshold2025 = money.Cents(150000) // $1,500

// CapitalLossCap2025 limits Schedule D's net-loss pass-through.
var CapitalLossCap2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(3000),
	domain.MarriedFilingJointly:     money.NewFromDollars(3000),
	domain.MarriedFilingSeparately:  money.NewFromDollars(1500),
	domain.HeadOfHousehold:          money.NewFromDollars(3000),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(3000),
}

// Self-employment tax rates.
const (
	SENetEarningsFactorBps  = int64(9235) // 92.35%
	SESocialSecurityRateBps = int64(1240) // 12.4%
	SEMedicareRateBps       = int64(290)  // 2.9%
)

// SSWageBase2025 is the Social Security wage base.
var SSWageBase2025 = money.NewFromDollars(176100)

// QDCG preferential-rate breakpoints (0%/15%/20% ladder) by filing status.
type QDCGBreakpoints struct {
	ZeroRateTop   money.Cents
	FifteenRateTop money.Cents
}

var QDCGBreakpoints2025 = map[domain.FilingStatus]QDCGBreakpoints{
	domain.Single:                  {money.NewFromDollars(48350), money.NewFromDollars(533400)},
	domain.MarriedFilingJointly:     {money.NewFromDollars(96700), money.NewFromDollars(600050)},
	domain.MarriedFilingSeparately:  {money.NewFromDollars(48350), money.NewFromDollars(300000)},
	domain.HeadOfHousehold:          {money.NewFromDollars(64750), money.NewFromDollars(566700)},
}

func init() {
	QDCGBreakpoints2025[domain.QualifyingSurvivingSpouse] = QDCGBreakpoints2025[domain.MarriedFilingJointly]
}

// Social Security taxability worksheet base/additional amounts.
type SSThresholds struct {
	Base       money.Cents
	Additional money.Cents
}

var SSThresholds2025 = map[domain.FilingStatus]SSThresholds{
	domain.Single:                  {money.NewFromDollars(25000), money.NewFromDollars(34000)},
	domain.HeadOfHousehold:          {money.NewFromDollars(25000), money.NewFromDollars(34000)},
	domain.QualifyingSurvivingSpouse: {money.NewFromDollars(25000), money.NewFromDollars(34000)},
	domain.MarriedFilingJointly:     {money.NewFromDollars(32000), money.NewFromDollars(44000)},
	domain.MarriedFilingSeparately:  {money.NewFromDollars(0), money.NewFromDollars(0)},
}

// SSThresholdsMFSLivedApart applies when mfsLivedApartAllYear is true.
var SSThresholdsMFSLivedApart = SSThresholds{Base: money.NewFromDollars(25000), Additional: money.NewFromDollars(34000)}

// Child Tax Credit constants.
const (
	CTCPerChild       = money.Cents(220000) // $2,200
	ODCPerDependent   = money.Cents(50000)  // $500
	CTCPhaseOutPerStep = money.Cents(5000)  // $50 per $1,000 of AGI over threshold
	ACTCRefundableCapPerChild = money.Cents(170000) // $1,700
	ACTCEarnedIncomeFloor = money.Cents(250000)     // $2,500
	ACTCEarnedIncomeRateBps = int64(1500)           // 15%
)

var CTCPhaseOutThreshold = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(200000),
	domain.MarriedFilingJointly:     money.NewFromDollars(400000),
	domain.MarriedFilingSeparately:  money.NewFromDollars(200000),
	domain.HeadOfHousehold:          money.NewFromDollars(200000),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(400000),
}

// HSA contribution limits.
const (
	HSASelfOnlyLimit2025 = money.Cents(430000) // $4,300
	HSAFamilyLimit2025   = money.Cents(855000) // $8,550
	HSACatchUpAge55      = money.Cents(100000) // $1,000
	HSAExcessPenaltyBps  = int64(600)           // 6%
	HSANonQualifiedPenaltyBps = int64(2000)     // 20%
)

// AMT constants.
var AMTExemption2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(88100),
	domain.MarriedFilingJointly:     money.NewFromDollars(137000),
	domain.MarriedFilingSeparately:  money.NewFromDollars(68500),
	domain.HeadOfHousehold:          money.NewFromDollars(88100),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(137000),
}

var AMTExemptionPhaseOutThreshold = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(626350),
	domain.MarriedFilingJointly:     money.NewFromDollars(1252700),
	domain.MarriedFilingSeparately:  money.NewFromDollars(626350),
	domain.HeadOfHousehold:          money.NewFromDollars(626350),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(1252700),
}

const AMTExemptionPhaseOutRateBps = int64(2500) // 25% of excess

const (
	AMT26PercentRateBps = int64(2600)
	AMT28PercentRateBps = int64(2800)
)

var AMT28PercentThreshold = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(239100),
	domain.MarriedFilingJointly:     money.NewFromDollars(239100),
	domain.MarriedFilingSeparately:  money.NewFromDollars(119550),
	domain.HeadOfHousehold:          money.NewFromDollars(239100),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(239100),
}

// Additional Medicare Tax and NIIT thresholds.
const (
	AddlMedicareRateBps = int64(90) // 0.9%
	NIITRateBps         = int64(380) // 3.8%
)

var AddlMedicareThreshold = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(200000),
	domain.MarriedFilingJointly:     money.NewFromDollars(250000),
	domain.MarriedFilingSeparately:  money.NewFromDollars(125000),
	domain.HeadOfHousehold:          money.NewFromDollars(200000),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(200000),
}

// NIITThreshold reuses the same figures per statute.
var NIITThreshold = AddlMedicareThreshold

// QBI thresholds. MFS and HOH share the single threshold, a simplifying assumption.
var QBIThreshold2025 = map[domain.FilingStatus]money.Cents{
	domain.Single:                  money.NewFromDollars(241950),
	domain.MarriedFilingJointly:     money.NewFromDollars(483900),
	domain.MarriedFilingSeparately:  money.NewFromDollars(241950),
	domain.HeadOfHousehold:          money.NewFromDollars(241950),
	domain.QualifyingSurvivingSpouse: money.NewFromDollars(483900),
}

const QBISSTBPhaseOutRange = money.Cents(7500000) // $75,000 (MFJ uses 2x = $150,000)

const QBIDeductionCapBps = int64(2000) // 20%

// SaverCreditBracket is one rung of Form 8880's AGI-tiered rate ladder.
type SaverCreditBracket struct {
	AGIUpTo money.Cents
	RateBps int64
}

const SaverCreditContributionCap = money.Cents(200000) // $2,000, applied once to the return's combined contribution figure

// SaverCreditBrackets2025 gives the 50%/20%/10%/0% ladder by filing
// status (2025 figures).
var SaverCreditBrackets2025 = map[domain.FilingStatus][]SaverCreditBracket{
	domain.MarriedFilingJointly: {
		{money.NewFromDollars(47500), 5000},
		{money.NewFromDollars(51000), 2000},
		{money.NewFromDollars(79000), 1000},
		{MaxCents, 0},
	},
	domain.HeadOfHousehold: {
		{money.NewFromDollars(35625), 5000},
		{money.NewFromDollars(38250), 2000},
		{money.NewFromDollars(59250), 1000},
		{MaxCents, 0},
	},
	domain.Single: {
		{money.NewFromDollars(23750), 5000},
		{money.NewFromDollars(25500), 2000},
		{money.NewFromDollars(39500), 1000},
		{MaxCents, 0},
	},
}

func init() {
	SaverCreditBrackets2025[domain.MarriedFilingSeparately] = SaverCreditBrackets2025[domain.Single]
	SaverCreditBrackets2025[domain.QualifyingSurvivingSpouse] = SaverCreditBrackets2025[domain.MarriedFilingJointly]
}
