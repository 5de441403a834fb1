// Package money implements the engine's central value type: a traced scalar
// expressed in integer cents with a provenance record attached. No floating
// point participates in any intermediate or output value anywhere in the
// engine; every multiplication or division that needs a fractional rate goes
// through shopspring/decimal internally and is rounded back to whole cents
// before it leaves this package.
package money

import (
	"github.com/shopspring/decimal"
)

// Cents is a signed whole number of US cents. It is the unit every amount in
// the engine is carried in; dollars-and-cents display formatting happens at
// the edges, never in the middle of a calculation.
type Cents int64

// NewFromDollars builds a Cents value from a whole-dollar amount, for
// constants tables (standard deductions, bracket breakpoints) that are
// always exact.
func NewFromDollars(dollars int64) Cents {
	return Cents(dollars * 100)
}

func (c Cents) Add(o Cents) Cents { return c + o }
func (c Cents) Sub(o Cents) Cents { return c - o }

func (c Cents) IsZero() bool     { return c == 0 }
func (c Cents) IsPositive() bool { return c > 0 }
func (c Cents) IsNegative() bool { return c < 0 }

func MaxCents(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

func MinCents(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

func ClampZeroCents(c Cents) Cents {
	if c < 0 {
		return 0
	}
	return c
}

// Decimal converts Cents to a shopspring/decimal.Decimal of dollars, for
// display or for feeding into a rate computation that needs to be chained.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(decimal.NewFromInt(100))
}

// String formats the amount as a plain fixed-point dollar string, e.g.
// "1234.56". Currency symbols and thousands separators are a presentation
// concern outside this package.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// SourceKind distinguishes the three shapes a TracedValue's provenance can
// take.
type SourceKind int

const (
	// SourceInput marks a value read directly from a return-model input box.
	SourceInput SourceKind = iota
	// SourceComputed marks a value derived from other TracedValues.
	SourceComputed
	// SourceLiteral marks a fixed constant, such as a statutory threshold,
	// that isn't read from any input.
	SourceLiteral
)

// Source records how a TracedValue came to exist. Exactly one group of
// fields is populated, matching Kind.
type Source struct {
	Kind SourceKind

	Ref string // SourceInput: the input-model field this was read from

	Op     string   // SourceComputed: the operation name (sum, sub, mul, ...)
	Inputs []string // SourceComputed: nodeIDs of the operands

	Reason string // SourceLiteral: why this constant has this value
}

// TracedValue is the engine's unit of output: an amount plus enough of its
// own history that any consumer can explain where it came from without
// falling back to an opaque placeholder.
type TracedValue struct {
	Amount      Cents
	NodeID      string
	Source      Source
	IRSCitation string
}

// WithCitation returns a copy of v annotated with an IRS line/form citation.
// Citations are descriptive metadata only; they never participate in the
// dependency graph.
func (v TracedValue) WithCitation(citation string) TracedValue {
	v.IRSCitation = citation
	return v
}

// rawCents is satisfied by Cents itself and by domain.Cents, the
// dependency-free int64 alias the return model's fields are declared with.
// Literal and Input take either so a schedule can hand them a domain field
// or an already-Cents constant without a conversion at every call site.
type rawCents interface{ ~int64 }

// Literal creates a leaf TracedValue for a fixed constant (a statutory
// threshold, a rate-table boundary) that isn't read from any input box.
func Literal[T rawCents](amount T, nodeID, reason string) TracedValue {
	return TracedValue{
		Amount: Cents(amount),
		NodeID: nodeID,
		Source: Source{Kind: SourceLiteral, Reason: reason},
	}
}

// Input creates a leaf TracedValue read directly from an input document box.
func Input[T rawCents](amount T, nodeID, ref string) TracedValue {
	return TracedValue{
		Amount: Cents(amount),
		NodeID: nodeID,
		Source: Source{Kind: SourceInput, Ref: ref},
	}
}

func inputIDs(values []TracedValue) []string {
	ids := make([]string, len(values))
	for i, v := range values {
		ids[i] = v.NodeID
	}
	return ids
}

// Sum adds any number of traced values, recording every operand as a
// dependency. Sum of zero values is the zero TracedValue with no operands.
func Sum(nodeID string, values ...TracedValue) TracedValue {
	var total Cents
	for _, v := range values {
		total += v.Amount
	}
	return TracedValue{
		Amount: total,
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "sum", Inputs: inputIDs(values)},
	}
}

// SubV subtracts b from a.
func SubV(nodeID string, a, b TracedValue) TracedValue {
	return TracedValue{
		Amount: a.Amount - b.Amount,
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "sub", Inputs: []string{a.NodeID, b.NodeID}},
	}
}

// MaxV returns the greater of a and b, recording both as dependencies.
func MaxV(nodeID string, a, b TracedValue) TracedValue {
	amt := a.Amount
	if b.Amount > amt {
		amt = b.Amount
	}
	return TracedValue{
		Amount: amt,
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "max", Inputs: []string{a.NodeID, b.NodeID}},
	}
}

// MinV returns the lesser of a and b, recording both as dependencies.
func MinV(nodeID string, a, b TracedValue) TracedValue {
	amt := a.Amount
	if b.Amount < amt {
		amt = b.Amount
	}
	return TracedValue{
		Amount: amt,
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "min", Inputs: []string{a.NodeID, b.NodeID}},
	}
}

// ClampZero floors a traced value at zero, e.g. "AGI cannot be negative".
func ClampZero(nodeID string, a TracedValue) TracedValue {
	amt := a.Amount
	if amt < 0 {
		amt = 0
	}
	return TracedValue{
		Amount: amt,
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "clampZero", Inputs: []string{a.NodeID}},
	}
}

// Rebind relabels a traced value under a new nodeID without altering its
// source graph. Used when one schedule's output also surfaces as a line on
// another form, e.g. Schedule B's taxable-interest total is also Form 1040
// line 2b.
func Rebind(newNodeID string, v TracedValue) TracedValue {
	return TracedValue{
		Amount:      v.Amount,
		NodeID:      newNodeID,
		Source:      Source{Kind: SourceComputed, Op: "rebind", Inputs: []string{v.NodeID}},
		IRSCitation: v.IRSCitation,
	}
}

// RoundingMode selects which half-rounding convention a rate application
// uses. The default for intermediate cent arithmetic is half-to-even;
// specific IRS forms and worksheets override it.
type RoundingMode int

const (
	// RoundHalfEven is banker's rounding, the engine-wide default.
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds .5 away from zero, used by the Form 1040 tax-line
	// whole-dollar convention and several worksheets.
	RoundHalfUp
	// RoundTruncate drops the remainder, used by the IRS tax tables.
	RoundTruncate
)

func applyRounding(d decimal.Decimal, mode RoundingMode, places int32) decimal.Decimal {
	switch mode {
	case RoundHalfUp:
		return d.Round(places)
	case RoundTruncate:
		return d.Truncate(places)
	default:
		return d.RoundBank(places)
	}
}

// Mul multiplies a traced value by a rational factor numerator/denominator
// (e.g. a tax rate expressed in basis points over 10,000), rounding to the
// nearest cent per mode.
func Mul(nodeID string, v TracedValue, numerator, denominator int64, mode RoundingMode) TracedValue {
	if denominator == 0 {
		panic("money: Mul called with zero denominator")
	}
	raw := decimal.NewFromInt(int64(v.Amount)).Mul(decimal.NewFromInt(numerator)).Div(decimal.NewFromInt(denominator))
	rounded := applyRounding(raw, mode, 0)
	return TracedValue{
		Amount: Cents(rounded.IntPart()),
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "mul", Inputs: []string{v.NodeID}},
	}
}

// Pct multiplies a traced value by a rate expressed in basis points (1/100
// of a percent; 750 means 7.5%).
func Pct(nodeID string, v TracedValue, bps int64, mode RoundingMode) TracedValue {
	return Mul(nodeID, v, bps, 10000, mode)
}

// RoundToWholeDollars rounds a traced value to the nearest whole dollar, the
// convention Form 1040 and most schedules use for every line once the final
// amount for that line is reached.
func RoundToWholeDollars(nodeID string, v TracedValue, mode RoundingMode) TracedValue {
	raw := v.Amount.Decimal()
	rounded := applyRounding(raw, mode, 0)
	return TracedValue{
		Amount: Cents(rounded.IntPart() * 100),
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "roundDollar", Inputs: []string{v.NodeID}},
	}
}

// Ratio is a dimensionless fraction in [0,1], four decimal places of
// precision, used for apportionment (part-year residency days, nonresident
// income allocation) rather than for money.
type Ratio = decimal.Decimal

// NewRatio builds a Ratio from numerator/denominator, clamped to [0,1].
// denominator == 0 returns zero rather than dividing by zero, since an
// apportionment ratio with no eligible days means nothing is apportioned.
func NewRatio(numerator, denominator int64) Ratio {
	if denominator == 0 {
		return decimal.Zero
	}
	r := decimal.NewFromInt(numerator).DivRound(decimal.NewFromInt(denominator), 4)
	if r.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if r.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return r
}

// FullRatio and ZeroRatio are the two apportionment extremes: full-year
// resident (1.0) and nonresident with no in-state source income tie (0.0).
func FullRatio() Ratio { return decimal.NewFromInt(1) }
func ZeroRatio() Ratio { return decimal.Zero }

// ApplyRatio multiplies a traced value by a dimensionless ratio (such as an
// apportionment ratio), rounding half-even to the cent.
func ApplyRatio(nodeID string, v TracedValue, ratio Ratio) TracedValue {
	raw := v.Amount.Decimal().Mul(ratio).Mul(decimal.NewFromInt(100))
	rounded := raw.RoundBank(0)
	return TracedValue{
		Amount: Cents(rounded.IntPart()),
		NodeID: nodeID,
		Source: Source{Kind: SourceComputed, Op: "applyRatio", Inputs: []string{v.NodeID}},
	}
}

// Zero returns a zero-valued literal TracedValue, for lines that are
// structurally present but not triggered for a given return.
func Zero(nodeID, reason string) TracedValue {
	return Literal(0, nodeID, reason)
}
