package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"anchor-sim/internal/analysis"
	"anchor-sim/internal/api/models"
	"anchor-sim/internal/config"
	"anchor-sim/internal/data"
	"anchor-sim/internal/pricemodel"
	"anchor-sim/internal/simulation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler handles session lifecycle requests
type SessionHandler struct {
	sessions  *data.SessionCache
	assetDir  string
	logger    *zap.Logger
	newTicker simulation.TickerFactory
}

// NewSessionHandler creates a new session handler. newTicker may be nil.
func NewSessionHandler(sessions *data.SessionCache, assetDir string, logger *zap.Logger, newTicker simulation.TickerFactory) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		assetDir:  assetDir,
		logger:    logger,
		newTicker: newTicker,
	}
}

// CreateSession handles POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	cfg, err := h.buildConfig(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_CONFIG", err)
		return
	}
	pm, err := pricemodel.Build(req.PriceModel.Name, req.PriceModel.Params, pricemodel.NewSeeded(req.Seed))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_PRICE_MODEL", err)
		return
	}

	opts := []simulation.Option{
		simulation.WithLogger(h.logger),
		simulation.WithPriceModel(pm),
	}
	if h.newTicker != nil {
		opts = append(opts, simulation.WithTickerFactory(h.newTicker))
	}
	s, err := simulation.New(cfg.ToModelConfig(), opts...)
	if err != nil {
		writeSessionError(c, err)
		return
	}
	h.sessions.Add(s)
	h.logger.Info("session created",
		zap.String("session", s.ID()),
		zap.String("asset", cfg.ToModelConfig().AssetName),
		zap.String("model", pm.Name()),
	)

	c.JSON(http.StatusCreated, models.SessionResponse{
		ID:        s.ID(),
		CreatedAt: s.CreatedAt(),
		Snapshot:  toSnapshotResponse(s.Snapshot()),
	})
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	snap := s.Snapshot()
	sum := toSummaryResponse(analysis.Summarize(snap))
	c.JSON(http.StatusOK, models.SessionResponse{
		ID:        s.ID(),
		CreatedAt: s.CreatedAt(),
		Snapshot:  toSnapshotResponse(snap),
		Summary:   &sum,
	})
}

// DeleteSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Remove(c.Param("id")); err != nil {
		writeSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateConfig handles PATCH /api/v1/sessions/:id/config
func (h *SessionHandler) UpdateConfig(c *gin.Context) {
	var req models.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}
	u := simulation.ConfigUpdate{
		AssetName:        req.AssetName,
		AnchorPrice:      req.AnchorPrice,
		MicroTradeAmount: req.MicroTradeAmount,
	}
	if req.TradeInterval != nil {
		d := time.Duration(*req.TradeInterval) * time.Second
		u.TradeInterval = &d
	}
	if err := s.UpdateConfig(u); err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotResponse(s.Snapshot()))
}

// Start handles POST /api/v1/sessions/:id/start
func (h *SessionHandler) Start(c *gin.Context) { h.transition(c, (*simulation.Session).Start) }

// Pause handles POST /api/v1/sessions/:id/pause
func (h *SessionHandler) Pause(c *gin.Context) { h.transition(c, (*simulation.Session).Pause) }

// Reset handles POST /api/v1/sessions/:id/reset
func (h *SessionHandler) Reset(c *gin.Context) { h.transition(c, (*simulation.Session).Reset) }

func (h *SessionHandler) transition(c *gin.Context, op func(*simulation.Session) error) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := op(s); err != nil {
		writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotResponse(s.Snapshot()))
}

// Export handles GET /api/v1/sessions/:id/export
func (h *SessionHandler) Export(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := s.ExportCSV(&buf); err != nil {
		writeSessionError(c, err)
		return
	}
	name := simulation.ExportFilename(s.Snapshot().Config.AssetName, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *SessionHandler) session(c *gin.Context) (*simulation.Session, bool) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		writeSessionError(c, err)
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) buildConfig(req models.CreateSessionRequest) (*config.Config, error) {
	cfg := &config.Config{
		Asset: config.AssetConfig{
			Name:             req.Asset.Name,
			AnchorPrice:      req.Asset.AnchorPrice,
			MicroTradeAmount: req.Asset.MicroTradeAmount,
			TradeInterval:    req.Asset.TradeInterval,
			InitialCash:      req.Asset.InitialCash,
		},
		PriceModel: config.PriceModelConfig{
			Name:   req.PriceModel.Name,
			Params: req.PriceModel.Params,
		},
	}

	// asset_file is a preset id; presets only come from the asset directory.
	if req.AssetFile != "" {
		id := strings.TrimSuffix(filepath.Base(req.AssetFile), ".yaml")
		cfg.AssetFile = filepath.Join(h.assetDir, id+".yaml")
		loaded, err := config.LoadAssetFile(cfg.AssetFile)
		if err != nil {
			return nil, fmt.Errorf("asset preset %q: %w", id, err)
		}
		cfg.Asset = config.MergeAsset(loaded, cfg.Asset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
