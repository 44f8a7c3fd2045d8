package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/ingest"
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/store"
)

// ============================================================================
// DASHBOARD STATS ENDPOINTS
// ============================================================================

// statsSummary serves GET /api/stats/summary — header KPIs.
func (s *Server) statsSummary(c *gin.Context) {
	sum, err := s.data.Summary(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// chartBoroughs serves GET /api/stats/charts/boroughs — trip counts per
// borough for the bar chart.
func (s *Server) chartBoroughs(c *gin.Context) {
	counts, err := s.data.BoroughCounts(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	if counts == nil {
		counts = []store.BoroughCount{}
	}
	c.JSON(http.StatusOK, counts)
}

// chartEfficiency serves GET /api/stats/charts/efficiency — average speed
// per time of day for the line chart.
func (s *Server) chartEfficiency(c *gin.Context) {
	speeds, err := s.data.TimeEfficiency(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	if speeds == nil {
		speeds = []store.SpeedByTime{}
	}
	c.JSON(http.StatusOK, speeds)
}

// quality serves GET /api/stats/quality: valid rows from the database,
// rejection totals from the ingest log, and the derived quality score.
func (s *Server) quality(c *gin.Context) {
	valid, err := s.data.ValidTripCount(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	counts, err := ingest.LoadCounts(s.opts.rejectionLog)
	if err != nil {
		s.renderError(c, err)
		return
	}
	rejected := int64(counts.Total())

	var score float64
	if attempted := valid + rejected; attempted > 0 {
		score = round2(float64(valid) / float64(attempted) * 100)
	}

	issues := []gin.H{
		qualityIssue("Time Reversal", counts.TimeReversal, "critical"),
		qualityIssue("Negative Fare", counts.NegativeFare, "critical"),
		qualityIssue(fmt.Sprintf("Extreme Speed (>%.0fMPH)", ingest.MaxPlausibleSpeedMPH), counts.ExtremeSpeed, "warning"),
		qualityIssue("Unknown Zones", counts.UnknownZone, "warning"),
	}

	c.JSON(http.StatusOK, gin.H{
		"overall_score":    fmt.Sprintf("%v%%", score),
		"valid_records":    valid,
		"rejected_records": rejected,
		"detailed_issues":  issues,
		"last_updated":     time.Now().Format("Jan 2, 2006"),
	})
}

// qualityIssue reports severity only when the issue actually occurred.
func qualityIssue(name string, count int, severity string) gin.H {
	status := severity
	if count == 0 {
		status = "success"
	}
	return gin.H{"issue": name, "count": count, "status": status}
}
