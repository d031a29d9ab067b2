package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"anchor-sim/internal/api/models"
	"anchor-sim/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssetHandler lists asset presets from a directory of YAML files.
type AssetHandler struct {
	assetDir string
	logger   *zap.Logger
}

func NewAssetHandler(dir string, logger *zap.Logger) *AssetHandler {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logger.Info("asset presets", zap.String("dir", dir))
	return &AssetHandler{assetDir: dir, logger: logger}
}

// ListAssets handles GET /api/v1/assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets := []models.AssetInfo{}

	entries, err := os.ReadDir(h.assetDir)
	if err != nil {
		// A missing directory just means no presets.
		h.logger.Warn("read asset dir", zap.String("dir", h.assetDir), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"assets": assets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.assetDir, entry.Name())
		a, err := config.LoadAssetFile(path)
		if err != nil {
			h.logger.Warn("skip asset preset", zap.String("file", path), zap.Error(err))
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := a.Name
		if name == "" {
			name = id
		}
		assets = append(assets, models.AssetInfo{
			ID:               id,
			Name:             name,
			File:             entry.Name(),
			AnchorPrice:      a.AnchorPrice,
			MicroTradeAmount: a.MicroTradeAmount,
			TradeInterval:    a.TradeInterval,
		})
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}
