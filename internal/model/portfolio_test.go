package model

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestApplyTradeScenario(t *testing.T) {
	anchor := 100.0
	amount := 1.0
	s := SimulationState{CurrentPrice: anchor, CashBalance: 1000, TradeStatus: StatusIdle}

	prices := []float64{100, 90, 110, 100}
	want := []TradeStatus{StatusIdle, StatusBuying, StatusSelling, StatusIdle}

	var heldAfterBuy float64
	for i, p := range prices {
		var tr Trade
		prevShares := s.SharesHeld
		s, tr = ApplyTrade(s, p, anchor, amount)
		if tr.Status != want[i] || s.TradeStatus != want[i] {
			t.Fatalf("tick %d price %.2f: status=%s want %s", i+1, p, tr.Status, want[i])
		}
		switch i {
		case 1:
			if math.Abs(s.CashBalance-999) > eps {
				t.Errorf("cash after buy = %v, want 999", s.CashBalance)
			}
			if math.Abs(s.SharesHeld-1.0/90) > eps {
				t.Errorf("shares after buy = %v, want %v", s.SharesHeld, 1.0/90)
			}
			heldAfterBuy = s.SharesHeld
		case 2:
			sold := math.Min(prevShares, 1.0/110)
			if math.Abs(s.SharesHeld-(heldAfterBuy-sold)) > eps {
				t.Errorf("shares after sell = %v, want %v", s.SharesHeld, heldAfterBuy-sold)
			}
			if math.Abs(s.CashBalance-(999+sold*110)) > eps {
				t.Errorf("cash after sell = %v, want %v", s.CashBalance, 999+sold*110)
			}
		}
	}
}

func TestApplyTradeEqualPriceIsIdle(t *testing.T) {
	s := SimulationState{CurrentPrice: 50, CashBalance: 1000, SharesHeld: 3}
	next, tr := ApplyTrade(s, 100, 100, 10)
	if tr.Status != StatusIdle || tr.Reason != ReasonAtAnchor {
		t.Fatalf("got %s/%s, want IDLE/%s", tr.Status, tr.Reason, ReasonAtAnchor)
	}
	if next.CashBalance != s.CashBalance || next.SharesHeld != s.SharesHeld {
		t.Errorf("balances changed on idle tick: %+v", next)
	}
	if next.CurrentPrice != 100 {
		t.Errorf("price not updated: %v", next.CurrentPrice)
	}
}

func TestApplyTradeInsufficientFundsDegradesToIdle(t *testing.T) {
	cases := []struct {
		name   string
		state  SimulationState
		price  float64
		reason string
	}{
		{"no cash", SimulationState{CashBalance: 0.5}, 90, ReasonInsufficientCash},
		{"no shares", SimulationState{CashBalance: 1000}, 110, ReasonNoShares},
		{"negative price", SimulationState{CashBalance: 1000}, -5, ReasonNonPositivePrice},
		{"zero price", SimulationState{CashBalance: 1000}, 0, ReasonNonPositivePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, tr := ApplyTrade(tc.state, tc.price, 100, 1)
			if tr.Status != StatusIdle || next.TradeStatus != StatusIdle {
				t.Fatalf("status = %s, want IDLE", tr.Status)
			}
			if tr.Reason != tc.reason {
				t.Errorf("reason = %q, want %q", tr.Reason, tc.reason)
			}
			if next.CashBalance != tc.state.CashBalance {
				t.Errorf("cash changed: %v", next.CashBalance)
			}
			if next.SharesHeld != tc.state.SharesHeld {
				t.Errorf("shares changed: %v", next.SharesHeld)
			}
			if v := next.TotalValue(); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("total value = %v", v)
			}
		})
	}
}

func TestApplyTradeSellIsCappedByHoldings(t *testing.T) {
	s := SimulationState{CashBalance: 0, SharesHeld: 0.001}
	next, tr := ApplyTrade(s, 200, 100, 10)
	if tr.Status != StatusSelling {
		t.Fatalf("status = %s", tr.Status)
	}
	if next.SharesHeld != 0 {
		t.Errorf("shares = %v, want 0", next.SharesHeld)
	}
	if math.Abs(next.CashBalance-0.2) > eps {
		t.Errorf("cash = %v, want 0.2", next.CashBalance)
	}
}

func TestApplyTradeBuyIsValueNeutral(t *testing.T) {
	s := SimulationState{CurrentPrice: 87.5, CashBalance: 500, SharesHeld: 2}
	before := s.TotalValue()
	next, tr := ApplyTrade(s, 87.5, 100, 25)
	if tr.Status != StatusBuying {
		t.Fatalf("status = %s", tr.Status)
	}
	if math.Abs(next.TotalValue()-before) > eps {
		t.Errorf("total value %v != %v", next.TotalValue(), before)
	}
}

func TestZoneFor(t *testing.T) {
	if ZoneFor(99, 100) != ZoneBuy {
		t.Error("below anchor should be BUY zone")
	}
	if ZoneFor(100, 100) != ZoneSell || ZoneFor(101, 100) != ZoneSell {
		t.Error("at or above anchor should be SELL zone")
	}
}
