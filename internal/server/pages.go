package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// flashMessages maps the flash code on /login to the text substituted into
// the page shell. Unknown codes render no flash.
var flashMessages = map[string]string{
	"logged_out": "You have been logged out.",
}

// handleHome serves the chat shell. Authentication is enforced by the page's
// own script (it redirects to /logout when no token is stored) and by the
// server-side check on /chat.
func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) handleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": flashMessages[c.Query("flash")],
	})
}
