package http

import (
	"github.com/gin-gonic/gin"
)

// GET /dashboard
func (s *Server) getDashboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	summary, err := s.dash.Summary(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, summary)
}
