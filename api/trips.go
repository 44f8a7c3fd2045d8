package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
)

// ============================================================================
// TRIP ENDPOINTS
// ============================================================================

// customSort serves GET /api/trips/custom-sort?sort_by=&limit=.
// Rows are fetched without ORDER BY and sorted by the engine's bubble sort.
func (s *Server) customSort(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "total_amount")
	limit := intQuery(c, "limit", 100)

	// Validate the caller-supplied field before fetching anything.
	if err := s.opts.tripFields.Validate(sortBy); err != nil {
		s.renderError(c, err)
		return
	}

	records, err := s.data.TripsForSort(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	sorted := engine.SortDescending(records, sortBy)
	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	final := sorted[:limit]

	c.JSON(http.StatusOK, gin.H{
		"message":         "Sorted using custom bubble sort algorithm (not SQL ORDER BY)",
		"algorithm":       "Bubble Sort - O(n²) time complexity",
		"sorted_by":       sortBy,
		"total_processed": len(records),
		"returned":        len(final),
		"data":            final,
	})
}

// topExpensive serves GET /api/trips/top-expensive?n=.
func (s *Server) topExpensive(c *gin.Context) {
	n := intQuery(c, "n", 10)

	records, err := s.data.TripsForTopN(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	top := engine.TopN(records, "total_amount", n)

	c.JSON(http.StatusOK, gin.H{
		"message":        fmt.Sprintf("Top %d most expensive trips", n),
		"algorithm_used": "Custom sorting + selection",
		"data":           top,
	})
}

// trips serves GET /api/trips?limit=&offset=&borough= — the raw-data table
// with pagination and optional borough filtering, all done in SQL.
func (s *Server) trips(c *gin.Context) {
	limit := intQuery(c, "limit", 200)
	offset := intQuery(c, "offset", 0)
	borough := c.Query("borough")

	records, err := s.data.Trips(c.Request.Context(), limit, offset, borough)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if records == nil {
		records = []engine.Record{}
	}
	c.JSON(http.StatusOK, records)
}

// intQuery reads an integer query parameter, falling back to def on absence
// or garbage — matching the lenient parsing the dashboard relies on.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
