package history

import "anchor-sim/internal/model"

// BalanceLog is the append-only record of cash balance changes. It is never
// truncated; an event is added only when the balance differs from the last
// logged one.
type BalanceLog struct {
	events []model.BalanceEvent
}

// NewBalanceLog returns a log seeded with the INITIAL event.
func NewBalanceLog(initialCash float64) *BalanceLog {
	l := &BalanceLog{}
	l.Reset(initialCash)
	return l
}

func (l *BalanceLog) Reset(initialCash float64) {
	l.events = append(l.events[:0], model.BalanceEvent{
		Time:    0,
		Balance: initialCash,
		Change:  0,
		Action:  model.ActionInitial,
	})
}

// Record appends an event when balance differs from the last logged balance.
// Change is measured against that last logged balance, so tick gaps between
// events are expected.
func (l *BalanceLog) Record(t int, balance float64, action model.Action, price float64) (model.BalanceEvent, bool) {
	last := l.Last()
	if balance == last.Balance {
		return model.BalanceEvent{}, false
	}
	p := price
	ev := model.BalanceEvent{
		Time:    t,
		Balance: balance,
		Change:  balance - last.Balance,
		Action:  action,
		Price:   &p,
	}
	l.events = append(l.events, ev)
	return ev, true
}

func (l *BalanceLog) Last() model.BalanceEvent {
	return l.events[len(l.events)-1]
}

// Events returns a copy, oldest first.
func (l *BalanceLog) Events() []model.BalanceEvent {
	out := make([]model.BalanceEvent, len(l.events))
	copy(out, l.events)
	return out
}

func (l *BalanceLog) Len() int { return len(l.events) }
