// Package trigger implements the pure predicate layer that decides
// which forms and schedules a computed return requires, decoupled from
// the schedule packages themselves so attachment decisions can be
// tested and explained independently of the arithmetic that produced
// the underlying amounts.
package trigger

import "github.com/form1040/taxengine/pkg/money"

// Inputs is every computed figure the attachment rules read. A field
// left at its zero value is treated as "not applicable" by the
// corresponding rule (e.g. HasHomeOfficeRegularMethod false means no
// Form 8829 regardless of the deduction amount).
type Inputs struct {
	ItemizedElected               bool
	ScheduleBRequired              bool
	HasSaleTransactionOrCapGainDist bool
	Form8949HasCategoryTransactions bool
	Schedule1AdjustmentNonZero     bool
	Schedule1AdditionalIncomeExists bool
	Schedule2LineItemsPositive     bool // AMT, SE tax, addl Medicare, NIIT, HSA penalties, etc.
	Schedule3Line20Positive        bool
	RefundableAOTCPositive         bool
	CTCNonrefundablePlusACTCPositive bool
	EducationCreditPositive        bool
	AMTPositive                    bool
	HSADescriptorPresent           bool
	QBIUsesSimplifiedPath          bool
	QBIApplies                     bool
	BusinessesNonEmpty             bool
	AggregateSETaxPositive         bool
	RentalPropertiesNonEmpty       bool
	HasHomeOfficeRegularMethod     bool
	HomeOfficeDeductionPositive    bool
	ForeignTaxApplicable           bool
	DirectForeignTaxCreditElected  bool
	PALResultRequired              bool
	BasisTrackingApplies           bool
}

// Result is the attachment decision for every conditionally-required
// form, true meaning the form must be attached to the return.
type Result struct {
	ScheduleA   bool
	ScheduleB   bool
	ScheduleD   bool
	Form8949    bool
	Schedule1   bool
	Schedule2   bool
	Schedule3   bool
	Form8812    bool
	Form8863    bool
	Form6251    bool
	Form8889    bool
	Form8995    bool
	Form8995A   bool
	ScheduleC   bool
	ScheduleSE  bool
	ScheduleE   bool
	Form8829    bool
	Form1116    bool
	Form8582    bool
	Form8606    bool
}

// Evaluate applies every form-attachment rule against the computed
// return's inputs.
func Evaluate(in Inputs) Result {
	form8995 := in.QBIApplies && in.QBIUsesSimplifiedPath
	form8995A := in.QBIApplies && !in.QBIUsesSimplifiedPath

	return Result{
		ScheduleA:  in.ItemizedElected,
		ScheduleB:  in.ScheduleBRequired,
		ScheduleD:  in.HasSaleTransactionOrCapGainDist,
		Form8949:   in.HasSaleTransactionOrCapGainDist && in.Form8949HasCategoryTransactions,
		Schedule1:  in.Schedule1AdjustmentNonZero || in.Schedule1AdditionalIncomeExists,
		Schedule2:  in.Schedule2LineItemsPositive,
		Schedule3:  in.Schedule3Line20Positive || in.RefundableAOTCPositive,
		Form8812:   in.CTCNonrefundablePlusACTCPositive,
		Form8863:   in.EducationCreditPositive,
		Form6251:   in.AMTPositive,
		Form8889:   in.HSADescriptorPresent,
		Form8995:   form8995,
		Form8995A:  form8995A,
		ScheduleC:  in.BusinessesNonEmpty,
		ScheduleSE: in.AggregateSETaxPositive,
		ScheduleE:  in.RentalPropertiesNonEmpty,
		Form8829:   in.HasHomeOfficeRegularMethod && in.HomeOfficeDeductionPositive,
		Form1116:   in.ForeignTaxApplicable && !in.DirectForeignTaxCreditElected,
		Form8582:   in.PALResultRequired,
		Form8606:   in.BasisTrackingApplies,
	}
}

// Positive reports whether a traced amount is strictly greater than
// zero, the recurring test every rule above applies to a computed line.
func Positive(v money.TracedValue) bool {
	return v.Amount > 0
}
