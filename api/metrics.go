package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsController exposes prometheus metrics on a public route.
type MetricsController struct {
	gatherer prometheus.Gatherer
}

// NewMetricsController serves metrics from g.
func NewMetricsController(g prometheus.Gatherer) *MetricsController {
	return &MetricsController{gatherer: g}
}

// RegisterPublic registers public routes.
func (mc *MetricsController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/metrics", gin.WrapH(promhttp.HandlerFor(mc.gatherer, promhttp.HandlerOpts{})))
}

// RegisterProtected registers protected routes.
func (mc *MetricsController) RegisterProtected(route *gin.RouterGroup) {}
