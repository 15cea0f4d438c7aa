package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ws "momentum-screener/internal/delivery/websocket"
)

// RouterDeps bundles the handlers wired into the HTTP surface.
type RouterDeps struct {
	Scan     *ScanHandler
	Analysis *AnalysisHandler
	Position *PositionHandler
	Token    *TokenHandler
	Stream   *ws.Handler
}

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	engine := gin.Default()
	engine.Use(corsMiddleware())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		api.GET("/scan", deps.Scan.GetScan)
		api.POST("/scan", deps.Scan.TriggerScan)

		api.GET("/analyze/:symbol", deps.Analysis.Analyze)
		api.GET("/signals/:symbol", deps.Analysis.Signals)
		api.GET("/patterns/:symbol", deps.Analysis.Patterns)
		api.GET("/backtest/:symbol", deps.Analysis.Backtest)

		api.POST("/position-size", deps.Position.CalculateSize)

		api.GET("/notifications/config", deps.Token.GetConfig)
		api.PUT("/notifications/config", deps.Token.UpdateConfig)
		api.POST("/tokens/register", deps.Token.RegisterToken)
		api.POST("/tokens/unregister", deps.Token.UnregisterToken)
	}

	engine.GET("/ws", func(c *gin.Context) {
		deps.Stream.Handle(c.Writer, c.Request)
	})

	return engine
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
