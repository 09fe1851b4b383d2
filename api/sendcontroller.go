package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSendRoutes registers the scrape-and-send trigger endpoints.
// GET /send keeps the path external schedulers already call; POST
// /api/send is the same operation under the API prefix.
func RegisterSendRoutes(r *gin.Engine, scrape ScrapeFunc, deliver Deliverer) {
	h := &sendHandler{scrape: scrape, deliver: deliver}
	r.GET("/send", h.handleSend)
	r.POST("/api/send", h.handleSend)
}

type sendHandler struct {
	scrape  ScrapeFunc
	deliver Deliverer
}

// handleSend runs a single traversal and delivers the result. The
// record slice is computed once and reused for both the delivery and
// the reported count.
func (h *sendHandler) handleSend(c *gin.Context) {
	if h.deliver == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no webhook configured"})
		return
	}

	articles, err := h.scrape(c.Request.Context())
	if err != nil {
		log.Printf("✗ scrape failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	sent, failed := h.deliver.SendEach(c.Request.Context(), articles)
	log.Printf("✓ delivered %d articles (%d failed)", sent, failed)
	c.JSON(http.StatusOK, gin.H{"sent": sent, "failed": failed})
}
