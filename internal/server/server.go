// Package server wires the HTTP surface: static page shells, login/logout,
// and the authenticated chat relay.
package server

import (
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotService/internal/auth"
	"chatbotService/internal/config"
	"chatbotService/internal/openai"
	"chatbotService/repository"
	"chatbotService/web"
)

type Server struct {
	cfg    *config.Config
	users  repository.UserRepositoryI
	ai     *openai.Client
	logger *zap.Logger
}

func New(cfg *config.Config, users repository.UserRepositoryI, ai *openai.Client, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, users: users, ai: ai, logger: logger}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(securityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.handleHome)
	r.GET("/login", s.handleLoginPage)
	r.POST("/login", s.handleLogin)
	r.GET("/logout", s.handleLogout)
	r.POST("/chat", auth.Middleware(s.cfg.Auth.JWTSecret), s.handleChat)

	return r
}

// securityHeaders adds the browser protection headers to every response.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Next()
	}
}
