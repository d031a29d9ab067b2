package history

import (
	"testing"

	"anchor-sim/internal/model"
)

func TestPriceSeriesEvictsOldestFirst(t *testing.T) {
	s := NewPriceSeries(DefaultPriceWindow)
	s.Reset(model.PricePoint{Time: 0, Price: 100})
	for i := 1; i <= 120; i++ {
		s.Append(model.PricePoint{Time: i, Price: float64(100 + i)})
		if s.Len() > DefaultPriceWindow {
			t.Fatalf("after %d appends len=%d exceeds %d", i, s.Len(), DefaultPriceWindow)
		}
	}
	pts := s.Points()
	if len(pts) != DefaultPriceWindow {
		t.Fatalf("len = %d, want %d", len(pts), DefaultPriceWindow)
	}
	if pts[0].Time != 71 || pts[len(pts)-1].Time != 120 {
		t.Errorf("window = [%d..%d], want [71..120]", pts[0].Time, pts[len(pts)-1].Time)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Time != pts[i-1].Time+1 {
			t.Fatalf("window not contiguous at %d: %v", i, pts[i-1:i+1])
		}
	}
}

func TestPriceSeriesDropsExactlyOneWhenFull(t *testing.T) {
	s := NewPriceSeries(3)
	for i := 0; i < 3; i++ {
		s.Append(model.PricePoint{Time: i})
	}
	s.Append(model.PricePoint{Time: 3})
	pts := s.Points()
	if len(pts) != 3 || pts[0].Time != 1 {
		t.Fatalf("points = %v, want times 1..3", pts)
	}
}

func TestPriceSeriesPointsIsACopy(t *testing.T) {
	s := NewPriceSeries(0)
	s.Append(model.PricePoint{Time: 0, Price: 1})
	pts := s.Points()
	pts[0].Price = 999
	if s.Points()[0].Price != 1 {
		t.Fatal("caller mutation leaked into series")
	}
	if s.Capacity() != DefaultPriceWindow {
		t.Errorf("capacity = %d, want default %d", s.Capacity(), DefaultPriceWindow)
	}
}

func TestBalanceLogRecordsOnlyChanges(t *testing.T) {
	l := NewBalanceLog(1000)

	if _, ok := l.Record(1, 1000, model.ActionIdle, 100); ok {
		t.Fatal("unchanged balance was logged")
	}
	ev, ok := l.Record(2, 999, model.ActionBuying, 90)
	if !ok {
		t.Fatal("changed balance was not logged")
	}
	if ev.Change != -1 || ev.Time != 2 || *ev.Price != 90 {
		t.Errorf("event = %+v", ev)
	}
	if _, ok := l.Record(3, 999, model.ActionIdle, 100); ok {
		t.Fatal("repeat balance was logged")
	}
	ev, ok = l.Record(5, 1000, model.ActionSelling, 110)
	if !ok || ev.Change != 1 {
		t.Fatalf("sell event = %+v ok=%v", ev, ok)
	}

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	if events[0].Action != model.ActionInitial || events[0].Price != nil {
		t.Errorf("initial event = %+v", events[0])
	}
	// Gaps in tick index are expected when nothing changed.
	if events[1].Time != 2 || events[2].Time != 5 {
		t.Errorf("times = %d,%d want 2,5", events[1].Time, events[2].Time)
	}
}

func TestBalanceLogReset(t *testing.T) {
	l := NewBalanceLog(1000)
	l.Record(1, 990, model.ActionBuying, 95)
	l.Reset(500)
	events := l.Events()
	want := model.BalanceEvent{Time: 0, Balance: 500, Change: 0, Action: model.ActionInitial}
	if len(events) != 1 || events[0] != want {
		t.Fatalf("events = %+v, want [%+v]", events, want)
	}
}
