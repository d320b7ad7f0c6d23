package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strata-labs/strata-backend/internal/projects/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.Response{
			Success: false,
			Error:   "Invalid JSON in request body",
		})
		return
	}

	res := h.svc.Create(c.Request.Context(), req)
	c.JSON(res.Status, res.Body)
}
