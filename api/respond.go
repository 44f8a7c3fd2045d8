package api

import (
	"math"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
)

// renderError maps core failures to HTTP. A bad caller-supplied field name
// is the caller's fault (400); everything else is ours (500, details logged
// but not leaked).
func (s *Server) renderError(c *gin.Context, err error) {
	var unknown *engine.UnknownFieldError
	if errors.As(err, &unknown) {
		c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
		return
	}

	var badType *engine.InvalidFieldTypeError
	if errors.As(err, &badType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": badType.Error()})
		return
	}

	s.log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// round2 rounds for display. The engine keeps full precision; rounding
// happens here, at the response boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
