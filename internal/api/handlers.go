package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"newpunch-journalist/internal/headlines"
	"newpunch-journalist/internal/model"
	"newpunch-journalist/internal/voice"

	"github.com/gin-gonic/gin"
)

type handlers struct {
	deps Deps
}

// query accepts the JSON query payload and answers with the ranked records.
// An empty body queries with defaults.
func (h *handlers) query(c *gin.Context) {
	var q headlines.Query
	if err := c.ShouldBindJSON(&q); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recs, err := h.deps.Query.Answer(c.Request.Context(), q)
	if err != nil {
		slog.Error("api: query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if recs == nil {
		recs = []model.ThreadRecord{}
	}
	c.JSON(http.StatusOK, recs)
}

func (h *handlers) voice(c *gin.Context) {
	var req voice.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.deps.Voice.Handle(c.Request.Context(), req))
}

// refresh runs a full cycle. The run outlives the request: a client that
// goes away between clear and put must not leave a table empty.
func (h *handlers) refresh(c *gin.Context) {
	ok := h.deps.Refresher.RunOnce(context.WithoutCancel(c.Request.Context()))
	status := http.StatusOK
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"ok": ok})
}

func (h *handlers) health(c *gin.Context) {
	if h.deps.Ping != nil {
		if err := h.deps.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
