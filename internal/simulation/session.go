package simulation

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"anchor-sim/internal/history"
	"anchor-sim/internal/model"
	"anchor-sim/internal/pricemodel"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns one simulation run: its config, state, history buffers and
// the active ticker. All mutation goes through its methods and is
// serialized by mu; readers get copies via Snapshot.
type Session struct {
	id        string
	createdAt time.Time
	logger    *zap.Logger
	newTicker TickerFactory
	window    int

	mu       sync.Mutex
	cfg      model.SimulationConfig
	prices   pricemodel.Model
	state    model.SimulationState
	run      model.RunState
	series   *history.PriceSeries
	balances *history.BalanceLog
	ticker   Ticker
	stop     chan struct{}
	gen      uint64
	version  uint64
	closed   bool
}

type Option func(*Session)

func WithID(id string) Option { return func(s *Session) { s.id = id } }

func WithLogger(l *zap.Logger) Option { return func(s *Session) { s.logger = l } }

func WithPriceModel(m pricemodel.Model) Option { return func(s *Session) { s.prices = m } }

func WithTickerFactory(f TickerFactory) Option { return func(s *Session) { s.newTicker = f } }

// WithPriceWindow overrides how many price points are retained.
func WithPriceWindow(n int) Option { return func(s *Session) { s.window = n } }

// New creates a stopped session at its initial state.
func New(cfg model.SimulationConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s := &Session{
		createdAt: time.Now(),
		cfg:       cfg,
		run:       model.RunStopped,
		window:    history.DefaultPriceWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	if s.newTicker == nil {
		s.newTicker = RealTicker
	}
	if s.prices == nil {
		s.prices = &pricemodel.Linear{
			Volatility: pricemodel.DefaultLinearVolatility,
			Noise:      pricemodel.NewSeeded(0),
		}
	}
	s.series = history.NewPriceSeries(s.window)
	s.balances = history.NewBalanceLog(cfg.InitialCash)
	s.resetLocked()
	return s, nil
}

func (s *Session) ID() string           { return s.id }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Start moves STOPPED or PAUSED to RUNNING and schedules exactly one ticker
// at the configured interval.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.run == model.RunRunning {
		return ErrAlreadyRunning
	}
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	from := s.run
	s.gen++
	t := s.newTicker(s.cfg.TradeInterval)
	stop := make(chan struct{})
	s.ticker, s.stop = t, stop
	s.run = model.RunRunning
	if s.state.TradeStatus == model.StatusPaused {
		s.state.TradeStatus = model.StatusIdle
	}
	s.version++
	go s.loop(s.gen, t, stop)

	s.logger.Info("simulation started",
		zap.String("from", string(from)),
		zap.String("asset", s.cfg.AssetName),
		zap.Float64("anchor", s.cfg.AnchorPrice),
		zap.Duration("interval", s.cfg.TradeInterval),
		zap.String("model", s.prices.Name()),
	)
	return nil
}

// Pause stops the ticker and freezes state in place.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.run != model.RunRunning {
		return ErrNotRunning
	}
	s.cancelTickerLocked()
	s.run = model.RunPaused
	s.state.TradeStatus = model.StatusPaused
	s.version++
	s.logger.Info("simulation paused", zap.Int("tick", s.state.TickCount))
	return nil
}

// Reset cancels any ticker and restores the config-derived initial state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	from := s.run
	s.cancelTickerLocked()
	s.run = model.RunStopped
	s.resetLocked()
	s.version++
	s.logger.Info("simulation reset", zap.String("from", string(from)))
	return nil
}

// Close tears the session down. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancelTickerLocked()
	s.run = model.RunStopped
	s.closed = true
	s.version++
	s.logger.Info("session closed")
}

// Step applies one tick immediately. The session must be running.
func (s *Session) Step() (TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return TickResult{}, ErrClosed
	}
	if s.run != model.RunRunning {
		return TickResult{}, ErrNotRunning
	}
	return s.tickLocked(), nil
}

// ConfigUpdate carries the operator-settable fields; nil leaves a field as is.
type ConfigUpdate struct {
	AssetName        *string
	AnchorPrice      *float64
	MicroTradeAmount *float64
	TradeInterval    *time.Duration
}

// UpdateConfig applies u atomically. Config is immutable unless the session
// is stopped. Changing the anchor re-baselines the current price and the
// price series.
func (s *Session) UpdateConfig(u ConfigUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.run != model.RunStopped {
		return ErrConfigLocked
	}

	next := s.cfg
	if u.AssetName != nil {
		next.AssetName = strings.TrimSpace(*u.AssetName)
	}
	if u.AnchorPrice != nil {
		next.AnchorPrice = *u.AnchorPrice
	}
	if u.MicroTradeAmount != nil {
		next.MicroTradeAmount = *u.MicroTradeAmount
	}
	if u.TradeInterval != nil {
		next.TradeInterval = *u.TradeInterval
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	rebase := next.AnchorPrice != s.cfg.AnchorPrice
	s.cfg = next
	if rebase {
		s.state.CurrentPrice = next.AnchorPrice
		s.series.Reset(model.PricePoint{Time: s.state.TickCount, Price: next.AnchorPrice})
	}
	s.version++
	return nil
}

func (s *Session) SetAssetName(name string) error {
	return s.UpdateConfig(ConfigUpdate{AssetName: &name})
}

func (s *Session) SetAnchorPrice(p float64) error {
	return s.UpdateConfig(ConfigUpdate{AnchorPrice: &p})
}

func (s *Session) SetMicroTradeAmount(a float64) error {
	return s.UpdateConfig(ConfigUpdate{MicroTradeAmount: &a})
}

func (s *Session) SetTradeInterval(d time.Duration) error {
	return s.UpdateConfig(ConfigUpdate{TradeInterval: &d})
}

// Snapshot returns a consistent copy of everything a view needs.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:         s.id,
		Model:      s.prices.Name(),
		Config:     s.cfg,
		State:      s.state,
		RunState:   s.run,
		Zone:       model.ZoneFor(s.state.CurrentPrice, s.cfg.AnchorPrice),
		TotalValue: s.state.TotalValue(),
		Prices:     s.series.Points(),
		Balances:   s.balances.Events(),
		Version:    s.version,
		CanExport:  s.canExportLocked(),
		Closed:     s.closed,
	}
}

// ExportCSV writes the balance log as CSV. It is only available while not
// running and once at least one event beyond INITIAL exists.
func (s *Session) ExportCSV(w io.Writer) error {
	s.mu.Lock()
	if !s.canExportLocked() {
		s.mu.Unlock()
		return ErrExportUnavailable
	}
	events := s.balances.Events()
	s.mu.Unlock()
	return WriteBalanceCSV(w, events)
}

func (s *Session) canExportLocked() bool {
	return s.run != model.RunRunning && s.balances.Len() > 1
}

func (s *Session) loop(gen uint64, t Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			s.onTick(gen)
		}
	}
}

// onTick ignores ticks from a ticker that was cancelled after the tick was
// received but before the lock was acquired.
func (s *Session) onTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.gen != gen || s.run != model.RunRunning {
		return
	}
	s.tickLocked()
}

// tickLocked derives price, trade and balance delta from one state snapshot
// and commits them together.
func (s *Session) tickLocked() TickResult {
	prev := s.state
	t := prev.TickCount + 1
	price := s.prices.Next(pricemodel.Context{
		Tick:       t,
		Prev:       prev.CurrentPrice,
		Anchor:     s.cfg.AnchorPrice,
		GrowthRate: s.cfg.GrowthRate,
	})
	next, tr := model.ApplyTrade(prev, price, s.cfg.AnchorPrice, s.cfg.MicroTradeAmount)
	next.TickCount = t
	point := model.PricePoint{Time: t, Price: price}

	s.state = next
	s.series.Append(point)
	res := TickResult{Point: point, Trade: tr, State: next}
	if ev, ok := s.balances.Record(t, next.CashBalance, model.ActionFromStatus(tr.Status), price); ok {
		res.Event = &ev
	}
	s.version++

	if tr.Status == model.StatusIdle {
		s.logger.Debug("tick idle",
			zap.Int("tick", t),
			zap.Float64("price", price),
			zap.String("reason", tr.Reason),
		)
	} else {
		s.logger.Debug("tick traded",
			zap.Int("tick", t),
			zap.String("status", string(tr.Status)),
			zap.Float64("price", price),
			zap.Float64("shares", tr.Shares),
			zap.Float64("cash", next.CashBalance),
		)
	}
	return res
}

func (s *Session) cancelTickerLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.ticker = nil
	s.stop = nil
}

func (s *Session) resetLocked() {
	s.state = model.InitialState(s.cfg)
	s.series.Reset(model.PricePoint{Time: 0, Price: s.cfg.AnchorPrice})
	s.balances.Reset(s.cfg.InitialCash)
}
