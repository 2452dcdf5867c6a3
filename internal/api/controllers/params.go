package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"skillsphere/pkg/utils"
)

// idParam parses a positive numeric path parameter. On failure it has already
// written the 400 response.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
