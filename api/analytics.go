package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
)

// ============================================================================
// ANALYTICS ENDPOINTS
// ============================================================================

// boroughCustom serves GET /api/analytics/borough-custom: per-borough
// average fares computed by the engine's manual group-by, not SQL GROUP BY.
func (s *Server) boroughCustom(c *gin.Context) {
	records, err := s.data.BoroughAmounts(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	averages := engine.AverageByGroup(records, "borough", "total_amount")

	data := make([]gin.H, 0, len(averages))
	for _, avg := range averages {
		data = append(data, gin.H{
			"borough":      avg.Key,
			"average_fare": round2(avg.Average),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Borough averages calculated with custom algorithm",
		"algorithm": "Manual grouping and aggregation (not SQL GROUP BY)",
		"data":      data,
	})
}

// analyticsSummary serves GET /api/analytics/summary: revenue/duration KPIs
// plus the peak-hours chart, aggregated in SQL.
func (s *Server) analyticsSummary(c *gin.Context) {
	ctx := c.Request.Context()

	rd, err := s.data.RevenueAndDuration(ctx)
	if err != nil {
		s.renderError(c, err)
		return
	}
	hours, err := s.data.TripsByHour(ctx)
	if err != nil {
		s.renderError(c, err)
		return
	}

	chart := make([]gin.H, 0, len(hours))
	for _, h := range hours {
		chart = append(chart, gin.H{
			"hour":  h.Hour + ":00",
			"trips": h.Count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"kpis": gin.H{
			"total_revenue":     fmt.Sprintf("$%.1fM", rd.TotalRevenue/1e6),
			"avg_trip_duration": fmt.Sprintf("%.1f min", rd.AvgDurationMin),
		},
		"chart_data": chart,
	})
}
