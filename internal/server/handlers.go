package server

import (
	"net/http"

	"factcheck/internal/claim"
	"factcheck/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type verifyRequest struct {
	Claim string `json:"claim" binding:"required"`
}

type verifyResponse struct {
	RequestID  string           `json:"request_id"`
	Verdict    claim.Verdict    `json:"verdict"`
	Confidence int              `json:"confidence"`
	Sources    []claim.Evidence `json:"sources"`
	Truncated  bool             `json:"truncated,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "claim is required"})
		return
	}

	edit := claim.Guard(req.Claim)
	text := claim.Normalize(edit.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"err": "claim is empty"})
		return
	}

	id := uuid.NewString()
	res, err := s.provider.Verify(c.Request.Context(), text)
	if err != nil {
		s.logger.Warn("verification failed", zap.String("request_id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"err": "verification failed", "request_id": id})
		return
	}

	sources := res.Sources
	if sources == nil {
		sources = []claim.Evidence{}
	}
	c.JSON(http.StatusOK, verifyResponse{
		RequestID:  id,
		Verdict:    res.Verdict,
		Confidence: res.Confidence,
		Sources:    sources,
		Truncated:  edit.OverLimit,
	})
}

func (s *Server) statsSnapshot(c *gin.Context) {
	if s.stats == nil {
		c.JSON(http.StatusOK, stats.Aggregate{
			ByVerdict:  map[string]int64{},
			ByProvider: map[string]stats.Counts{},
		})
		return
	}
	c.JSON(http.StatusOK, s.stats.Snapshot())
}
