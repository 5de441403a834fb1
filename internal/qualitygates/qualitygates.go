// Package qualitygates implements cross-form invariant checks: equalities
// that must hold between a schedule's own output and the Form 1040 line
// it feeds, plus the universal per-state reconciliation invariants.
// These never block a compute (the engine
// always returns a full result); a failed gate is a defect in the engine
// itself, not a data anomaly about the taxpayer's return, so it is kept
// separate from internal/validation's non-blocking taxpayer-facing
// diagnostics.
package qualitygates

import (
	"fmt"

	"github.com/form1040/taxengine/internal/orchestrator"
	"github.com/form1040/taxengine/internal/states"
	"github.com/form1040/taxengine/pkg/money"
	"github.com/shopspring/decimal"
)

// Gate is the outcome of a single cross-form invariant check.
type Gate struct {
	Code        string
	Description string
	Passed      bool
	Detail      string
}

// Report aggregates every gate evaluated for one compute.
type Report struct {
	Gates []Gate
}

// AllPassed reports whether every evaluated gate passed.
func (r Report) AllPassed() bool {
	for _, g := range r.Gates {
		if !g.Passed {
			return false
		}
	}
	return true
}

// Failed returns only the gates that did not pass.
func (r Report) Failed() []Gate {
	var out []Gate
	for _, g := range r.Gates {
		if !g.Passed {
			out = append(out, g)
		}
	}
	return out
}

func (r *Report) add(code, description string, passed bool, detail string) {
	r.Gates = append(r.Gates, Gate{Code: code, Description: description, Passed: passed, Detail: detail})
}

// EvaluateFederal runs every federal cross-form check against one Form
// 1040 compute.
func EvaluateFederal(fed orchestrator.Result) Report {
	var r Report

	if fed.ScheduleB.Required {
		r.add("QG-SCHB-LINE4", "Schedule B line 4 equals Form 1040 line 2b",
			fed.ScheduleB.Line4Interest.Amount == fed.Line2bTaxableInterest.Amount,
			fmt.Sprintf("scheduleB.line4=%d form1040.line2b=%d", fed.ScheduleB.Line4Interest.Amount, fed.Line2bTaxableInterest.Amount))
		r.add("QG-SCHB-LINE6", "Schedule B line 6 equals Form 1040 line 3b",
			fed.ScheduleB.Line6Dividends.Amount == fed.Line3bOrdinaryDividends.Amount,
			fmt.Sprintf("scheduleB.line6=%d form1040.line3b=%d", fed.ScheduleB.Line6Dividends.Amount, fed.Line3bOrdinaryDividends.Amount))
	}

	if fed.Triggers.ScheduleD {
		r.add("QG-SCHD-LINE21", "Schedule D line 21 equals Form 1040 line 7",
			fed.ScheduleD.Line21.Amount == fed.Line7CapitalGain.Amount,
			fmt.Sprintf("scheduleD.line21=%d form1040.line7=%d", fed.ScheduleD.Line21.Amount, fed.Line7CapitalGain.Amount))
	}

	seHalf := fed.ScheduleSE.Line12DeductibleHalf.Amount
	r.add("QG-SE-LINE12", "Schedule SE line 12 (deductible half) is included in Form 1040 line 10",
		seHalf <= fed.Line10Adjustments.Amount,
		fmt.Sprintf("scheduleSE.line12=%d form1040.line10=%d", seHalf, fed.Line10Adjustments.Amount))

	r.add("QG-8812-ACTC", "Form 8812 refundable ACTC equals Form 1040 line 28",
		fed.CTC.ACTC.Amount == fed.Line28ACTC.Amount,
		fmt.Sprintf("form8812.actc=%d form1040.line28=%d", fed.CTC.ACTC.Amount, fed.Line28ACTC.Amount))

	r.add("QG-OVERPAID-XOR-OWED", "At most one of Form 1040 line 34 (overpaid) and line 37 (owed) is non-zero",
		fed.Line34Overpaid.Amount == 0 || fed.Line37Owed.Amount == 0,
		fmt.Sprintf("line34=%d line37=%d", fed.Line34Overpaid.Amount, fed.Line37Owed.Amount))

	r.add("QG-NONNEGATIVE", "Form 1040 line 34 and line 37 are both non-negative",
		fed.Line34Overpaid.Amount >= 0 && fed.Line37Owed.Amount >= 0,
		fmt.Sprintf("line34=%d line37=%d", fed.Line34Overpaid.Amount, fed.Line37Owed.Amount))

	return r
}

// EvaluateState runs the universal per-state reconciliation invariants
// against one state's result.
func EvaluateState(s states.Result) Report {
	var r Report

	r.add(fmt.Sprintf("QG-%s-TAXAFTERCREDITS", s.StateCode), "taxAfterCredits is non-negative",
		s.TaxAfterCredits.Amount >= 0,
		fmt.Sprintf("taxAfterCredits=%d", s.TaxAfterCredits.Amount))

	wantOverpaid := maxZero(s.TotalPayments.Amount - s.TaxAfterCredits.Amount)
	wantOwed := maxZero(s.TaxAfterCredits.Amount - s.TotalPayments.Amount)
	r.add(fmt.Sprintf("QG-%s-RECONCILE", s.StateCode), "overpaid = max(0, totalPayments - taxAfterCredits); amountOwed = max(0, taxAfterCredits - totalPayments)",
		s.Overpaid.Amount == wantOverpaid && s.AmountOwed.Amount == wantOwed,
		fmt.Sprintf("totalPayments=%d taxAfterCredits=%d overpaid=%d amountOwed=%d", s.TotalPayments.Amount, s.TaxAfterCredits.Amount, s.Overpaid.Amount, s.AmountOwed.Amount))

	r.add(fmt.Sprintf("QG-%s-OVERPAID-XOR-OWED", s.StateCode), "overpaid * amountOwed = 0",
		s.Overpaid.Amount == 0 || s.AmountOwed.Amount == 0,
		fmt.Sprintf("overpaid=%d amountOwed=%d", s.Overpaid.Amount, s.AmountOwed.Amount))

	ratioOK := s.ApportionmentRatio.GreaterThanOrEqual(decimal.Zero) && s.ApportionmentRatio.LessThanOrEqual(decimal.NewFromInt(1))
	r.add(fmt.Sprintf("QG-%s-RATIO", s.StateCode), "apportionmentRatio is in [0,1]", ratioOK,
		fmt.Sprintf("ratio=%s", s.ApportionmentRatio.String()))

	return r
}

func maxZero(v money.Cents) money.Cents {
	if v < 0 {
		return 0
	}
	return v
}
