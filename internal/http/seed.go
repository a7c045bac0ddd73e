package http

import (
	"github.com/gin-gonic/gin"
)

// POST /seed-data
func (s *Server) seedData(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	result, err := s.seeder.Seed(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, result)
}
