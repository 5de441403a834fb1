package scheduled

import (
	"github.com/form1040/taxengine/internal/constants"
	"github.com/form1040/taxengine/internal/domain"
	"github.com/form1040/taxengine/internal/tracer"
	"github.com/form1040/taxengine/pkg/money"
)

// Result holds Schedule D's lines plus the carryforward split by term.
type Result struct {
	Form8949           Form8949Result
	ShortTermNet        money.TracedValue // line 7
	LongTermNet          money.TracedValue // line 15
	CapitalGainDistributions money.TracedValue // line 13
	NetGainLoss          money.TracedValue // line 16
	Line21               money.TracedValue // flows to Form 1040 line 7
	CarryforwardShortTerm money.TracedValue
	CarryforwardLongTerm  money.TracedValue
	Triggered            bool
}

// Compute runs Form 8949 then aggregates Schedule D. capGainDistributions
// is the sum of every 1099-DIV box 2a (long-term by rule); it is computed
// by the caller (Form 1040 orchestrator) since it draws on dividend
// statements rather than sale transactions, and passed in so Schedule D's
// line 13 (scheduleD.line13) is a relabel of the value the orchestrator
// already registered.
func Compute(store *tracer.Store, model *domain.ReturnModel, capGainDistributions money.TracedValue) Result {
	triggered := len(model.SaleTransactions) > 0 || capGainDistributions.Amount > 0
	form8949 := ComputeForm8949(store, model)

	priorST := store.Put(money.Literal(model.PriorYearCapitalLossCarryforward.ShortTerm, "scheduleD.priorYearCarryforwardShortTerm", "prior-year short-term capital loss carryforward"))
	priorSTLoss := store.Put(money.Mul("scheduleD.line6", priorST, -1, 1, money.RoundHalfEven))
	priorLT := store.Put(money.Literal(model.PriorYearCapitalLossCarryforward.LongTerm, "scheduleD.priorYearCarryforwardLongTerm", "prior-year long-term capital loss carryforward"))
	priorLTLoss := store.Put(money.Mul("scheduleD.line14", priorLT, -1, 1, money.RoundHalfEven))

	line1a := store.Put(money.Zero("scheduleD.line1a", "no unreported short-term transactions"))
	line1b := form8949.Categories[domain.CategoryA].TotalGainLoss
	line2 := form8949.Categories[domain.CategoryB].TotalGainLoss
	line3 := form8949.Categories[domain.CategoryC].TotalGainLoss
	line7 := store.Put(money.Sum("scheduleD.line7", line1a, line1b, line2, line3, priorSTLoss))

	line8a := store.Put(money.Zero("scheduleD.line8a", "no unreported long-term transactions"))
	line8b := form8949.Categories[domain.CategoryD].TotalGainLoss
	line9 := form8949.Categories[domain.CategoryE].TotalGainLoss
	line10 := form8949.Categories[domain.CategoryF].TotalGainLoss
	line13 := store.Put(money.Rebind("scheduleD.line13", capGainDistributions))
	line15 := store.Put(money.Sum("scheduleD.line15", line8a, line8b, line9, line10, line13, priorLTLoss))

	line16 := store.Put(money.Sum("scheduleD.line16", line7, line15))

	cap := constants.CapitalLossCap2025[model.FilingStatus]
	var line21 money.TracedValue
	var cfShort, cfLong money.TracedValue
	if line16.Amount >= 0 {
		line21 = store.Put(money.Rebind("scheduleD.line21", line16))
		cfShort = store.Put(money.Zero("scheduleD.carryforwardShortTerm", "no carryforward, net gain"))
		cfLong = store.Put(money.Zero("scheduleD.carryforwardLongTerm", "no carryforward, net gain"))
	} else {
		loss := money.Cents(-line16.Amount)
		allowed := money.MinCents(cap, loss)
		capLit := store.Put(money.Literal(allowed, "scheduleD.allowedLoss", "capital loss limitation"))
		line21 = store.Put(money.Mul("scheduleD.line21", capLit, -1, 1, money.RoundHalfEven))
		remaining := loss - allowed
		// The carryforward is split between the terms in proportion to each
		// term's net loss; a mixed ST gain / LT loss (or vice versa)
		// allocates the whole excess to the term that was actually negative.
		shortLoss := money.Cents(0)
		if line7.Amount < 0 {
			shortLoss = -line7.Amount
		}
		longLoss := money.Cents(0)
		if line15.Amount < 0 {
			longLoss = -line15.Amount
		}
		total := shortLoss + longLoss
		var cfS, cfL money.Cents
		if total > 0 {
			cfS = money.Cents(int64(remaining) * int64(shortLoss) / int64(total))
			cfL = remaining - cfS
		}
		cfShort = store.Put(money.Literal(cfS, "scheduleD.carryforwardShortTerm", "short-term capital loss carryforward"))
		cfLong = store.Put(money.Literal(cfL, "scheduleD.carryforwardLongTerm", "long-term capital loss carryforward"))
	}

	return Result{
		Form8949:                form8949,
		ShortTermNet:            line7,
		LongTermNet:             line15,
		CapitalGainDistributions: line13,
		NetGainLoss:             line16,
		Line21:                  line21,
		CarryforwardShortTerm:   cfShort,
		CarryforwardLongTerm:    cfLong,
		Triggered:               triggered,
	}
}
