package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotService/internal/auth"
	"chatbotService/models"
	"chatbotService/repository"
)

// handleLogin validates credentials and issues a session token. The 401
// message is identical for an unknown user and a wrong password so the
// response leaks nothing about which one failed.
func (s *Server) handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Msg: "Missing username or password"})
		return
	}

	user, err := s.users.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		s.logger.Error("user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Msg: "An application error occurred"})
		return
	}
	if user == nil || !repository.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Info("login failed", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Msg: "Bad username or password"})
		return
	}

	token, err := auth.IssueToken(user.Username, s.cfg.Auth.JWTSecret)
	if err != nil {
		s.logger.Error("token issuance failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Msg: "Failed to generate token"})
		return
	}

	s.logger.Info("login ok", zap.String("username", user.Username))
	c.JSON(http.StatusOK, models.LoginResponse{AccessToken: token})
}

// handleLogout redirects to the login page. Tokens are stateless, so the
// actual discard happens client-side; nothing is revoked here.
func (s *Server) handleLogout(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login?flash=logged_out")
}
