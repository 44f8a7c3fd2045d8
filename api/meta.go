package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// health serves GET /api/health — API liveness plus database reachability.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "online",
		"database_found": s.data.Ping(c.Request.Context()) == nil,
	})
}

// zones serves GET /api/zones — LocationID → {Borough, Zone} for O(1)
// lookup on the frontend.
func (s *Server) zones(c *gin.Context) {
	zones, err := s.data.Zones(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}
