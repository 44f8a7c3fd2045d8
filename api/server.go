// Package api exposes the analytics service over HTTP: the dashboard's
// metadata, stats and raw-data endpoints, plus the three custom-algorithm
// endpoints that route through the engine instead of SQL ORDER BY/GROUP BY.
package api

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/store"
)

// DataSource is what the handlers need from the store. The concrete
// *store.Store satisfies it; tests substitute a stub.
type DataSource interface {
	Ping(ctx context.Context) error
	Zones(ctx context.Context) (map[int64]store.Zone, error)
	Summary(ctx context.Context) (store.Summary, error)
	BoroughCounts(ctx context.Context) ([]store.BoroughCount, error)
	TimeEfficiency(ctx context.Context) ([]store.SpeedByTime, error)
	RevenueAndDuration(ctx context.Context) (store.RevenueDuration, error)
	TripsByHour(ctx context.Context) ([]store.HourlyTrips, error)
	ValidTripCount(ctx context.Context) (int64, error)
	Trips(ctx context.Context, limit, offset int, borough string) ([]engine.Record, error)
	TripsForSort(ctx context.Context) ([]engine.Record, error)
	TripsForTopN(ctx context.Context) ([]engine.Record, error)
	BoroughAmounts(ctx context.Context) ([]engine.Record, error)
}

// Server wires the data source to the HTTP routes.
type Server struct {
	data DataSource
	log  *zap.Logger
	opts options
}

// NewServer builds a Server. The data source is injected — the server never
// opens or closes storage itself.
func NewServer(data DataSource, log *zap.Logger, opts ...Option) *Server {
	return &Server{
		data: data,
		log:  log,
		opts: applyOptions(opts),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.log))

	corsCfg := cors.DefaultConfig()
	if len(s.opts.corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true // dashboard is served from elsewhere
	} else {
		corsCfg.AllowOrigins = s.opts.corsOrigins
	}
	r.Use(cors.New(corsCfg))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", s.health)
		apiGroup.GET("/zones", s.zones)
		apiGroup.GET("/trips", s.trips)
		apiGroup.GET("/stats/summary", s.statsSummary)
		apiGroup.GET("/stats/charts/boroughs", s.chartBoroughs)
		apiGroup.GET("/stats/charts/efficiency", s.chartEfficiency)
		apiGroup.GET("/stats/quality", s.quality)
		apiGroup.GET("/analytics/summary", s.analyticsSummary)

		// Custom-algorithm endpoints — the engine does the work here.
		apiGroup.GET("/trips/custom-sort", s.customSort)
		apiGroup.GET("/trips/top-expensive", s.topExpensive)
		apiGroup.GET("/analytics/borough-custom", s.boroughCustom)
	}

	return r
}
