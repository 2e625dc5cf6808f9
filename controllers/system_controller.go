package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rtu-kota/canteen-api/config"
	"github.com/rtu-kota/canteen-api/middleware"
	"github.com/rtu-kota/canteen-api/store"
)

// probeTimeout bounds the store round-trip of the diagnostics endpoint
const probeTimeout = 5 * time.Second

// maxErrorLen caps error text echoed by the diagnostics endpoint
const maxErrorLen = 80

// SystemController serves the liveness and diagnostics endpoints
type SystemController struct {
	prober store.Prober
	cfg    *config.Config
}

// NewSystemController returns a SystemController. prober may be nil when no store exists.
func NewSystemController(prober store.Prober, cfg *config.Config) *SystemController {
	return &SystemController{prober: prober, cfg: cfg}
}

// Root handles GET /
func (sc *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "RTU Kota Canteen API is running"})
}

// Hello handles GET /api/hello
func (sc *SystemController) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from RTU canteen backend!"})
}

// Diagnostics handles GET /test. It always answers 200; failures are described in the body.
func (sc *SystemController) Diagnostics(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[%s] diagnostics probe panicked: %v", middleware.GetRequestID(c), r)
				response["database"] = "❌ Error: " + truncate(fmt.Sprint(r), maxErrorLen)
			}
		}()
		sc.probe(c.Request.Context(), response)
	}()

	c.JSON(http.StatusOK, response)
}

func (sc *SystemController) probe(ctx context.Context, response gin.H) {
	if sc.prober == nil {
		return
	}
	if !sc.prober.Initialized() {
		response["database"] = "⚠️  Available but not initialized"
		return
	}

	response["database"] = "✅ Available"
	response["database_url"] = setStatus(sc.cfg != nil && sc.cfg.DatabaseURLSet())
	response["database_name"] = setStatus(sc.cfg != nil && sc.cfg.DatabaseNameSet())

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	names, err := sc.prober.CollectionNames(ctx)
	if err != nil {
		response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), maxErrorLen)
		return
	}

	if names == nil {
		names = []string{}
	}
	response["collections"] = names
	response["database"] = "✅ Connected & Working"
	response["connection_status"] = "Connected"
}

func setStatus(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
