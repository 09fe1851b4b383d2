// Package api exposes the headless HTTP trigger surface: a send
// endpoint that runs one scrape-and-deliver pass, plus a health check.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"vemabot/types"
)

// ScrapeFunc runs one traversal of the blog listing.
type ScrapeFunc func(ctx context.Context) ([]types.Article, error)

// Deliverer forwards records to the configured webhook. Nil when no
// webhook is configured.
type Deliverer interface {
	SendEach(ctx context.Context, articles []types.Article) (sent, failed int)
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(scrape ScrapeFunc, deliver Deliverer) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterSendRoutes(r, scrape, deliver)
	RegisterHealthRoutes(r)
	return r
}
