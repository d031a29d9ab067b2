package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"anchor-sim/internal/model"
	"anchor-sim/internal/simulation"
)

func TestLoadPriceTape(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tape.json")
	if err := os.WriteFile(p, []byte(`{"asset":"ACME","prices":[100,90,110,100]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	tape, err := LoadPriceTape(p)
	if err != nil {
		t.Fatal(err)
	}
	if tape.Asset != "ACME" || len(tape.Prices) != 4 || tape.Prices[1] != 90 {
		t.Fatalf("tape = %+v", tape)
	}
}

func TestLoadPriceTapeRejectsBadPrices(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"empty.json":    `{"asset":"X","prices":[]}`,
		"negative.json": `{"asset":"X","prices":[1,-2]}`,
		"broken.json":   `{"asset":`,
	} {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPriceTape(p); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func newSession(t *testing.T, id string) *simulation.Session {
	t.Helper()
	s, err := simulation.New(model.DefaultConfig(),
		simulation.WithID(id),
		simulation.WithTickerFactory((&simulation.ManualTickers{}).New),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionCacheEvictionClosesSession(t *testing.T) {
	c, err := NewSessionCache(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, b, d := newSession(t, "a"), newSession(t, "b"), newSession(t, "d")
	c.Add(a)
	c.Add(b)
	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	c.Add(d)

	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}
	if _, err := c.Get("a"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("a should be evicted, err = %v", err)
	}
	snap := a.Snapshot()
	if !snap.Closed || snap.RunState != model.RunStopped {
		t.Fatalf("evicted session not closed: %+v", snap.RunState)
	}
}

func TestSessionCacheRemove(t *testing.T) {
	c, err := NewSessionCache(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := newSession(t, "x")
	c.Add(s)
	got, err := c.Get("x")
	if err != nil || got != s {
		t.Fatalf("get = %v, %v", got, err)
	}
	if err := c.Remove("x"); err != nil {
		t.Fatal(err)
	}
	if !s.Snapshot().Closed {
		t.Error("removed session not closed")
	}
	if err := c.Remove("x"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second remove err = %v", err)
	}
}

func TestNewSessionCacheRejectsZeroSize(t *testing.T) {
	if _, err := NewSessionCache(0, nil); err == nil {
		t.Fatal("expected error")
	}
}
