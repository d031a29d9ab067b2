package handlers

import (
	"net/http"

	"anchor-sim/internal/api/models"
	"anchor-sim/internal/pricemodel"

	"github.com/gin-gonic/gin"
)

// ListModels handles GET /api/v1/models
func ListModels(c *gin.Context) {
	catalog := pricemodel.Catalog()
	out := make([]models.ModelInfo, 0, len(catalog))
	for _, m := range catalog {
		info := models.ModelInfo{
			Name:        m.Name,
			Description: m.Description,
			Parameters:  make([]models.ParameterInfo, 0, len(m.Params)),
		}
		for _, p := range m.Params {
			info.Parameters = append(info.Parameters, models.ParameterInfo{
				Name:        p.Name,
				Type:        p.Type,
				Description: p.Description,
				Default:     p.Default,
			})
		}
		out = append(out, info)
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}
