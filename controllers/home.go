package controllers

import (
	"net/http"

	"Prescryber/utils"

	"github.com/gin-gonic/gin"
)

type HomeController struct{}

func (h *HomeController) Index(c *gin.Context) {
	c.String(http.StatusOK, utils.HOME_RESPONSE)
}

// Invalid answers every unmatched path.
func (h *HomeController) Invalid(c *gin.Context) {
	c.String(http.StatusNotFound, utils.INVALID_RESPONSE)
}
