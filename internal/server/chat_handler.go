package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotService/internal/auth"
	"chatbotService/internal/openai"
	"chatbotService/models"
)

// handleChat forwards one user message to the upstream API and relays the
// reply. Each call is independent; no conversation history is kept.
//
// Upstream 401/403/429 are expected operational conditions (bad key, plan,
// rate limit) and are masked as a normal 200 chat reply so the browser
// renders them as a bot bubble. Every other upstream status passes through
// with the upstream's own message.
func (s *Server) handleChat(c *gin.Context) {
	p, ok := auth.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Msg: "Missing or invalid token"})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Msg: "No message provided"})
		return
	}

	s.logger.Info("chat message", zap.String("username", p.Name))

	reply, err := s.ai.Complete(c.Request.Context(), req.Message)
	if err != nil {
		var ue *openai.UpstreamError
		if errors.As(err, &ue) {
			switch ue.Status {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
				mock := fmt.Sprintf(
					"It looks like the OpenAI API is currently unavailable or has exceeded its quota (HTTP %d). "+
						"I am currently unable to answer your query. Please check your API key, plan, and billing details.",
					ue.Status)
				c.JSON(http.StatusOK, models.ChatResponse{Response: mock})
				return
			default:
				c.JSON(ue.Status, models.ErrorResponse{
					Msg: fmt.Sprintf("OpenAI API Error (HTTP %d): %s", ue.Status, ue.Message),
				})
				return
			}
		}
		s.logger.Error("chat failed", zap.String("username", p.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Msg: fmt.Sprintf("An application error occurred: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}
