package middleware

import (
	"net/http"

	"Prescryber/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Schema validation guards. These are shape checks only, not security; the
// body bytes are cached so handlers can bind the same payload again.

func ValidateRegistration(c *gin.Context) *Rejection {
	var payload models.RegisterPayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		return &Rejection{http.StatusUnprocessableEntity, err.Error()}
	}
	return nil
}

func ValidatePrescription(c *gin.Context) *Rejection {
	var payload models.PrescriptionPayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		return &Rejection{http.StatusUnprocessableEntity, err.Error()}
	}
	return nil
}

func ValidateUpdatePrescription(c *gin.Context) *Rejection {
	var payload models.UpdatePrescriptionPayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		return &Rejection{http.StatusUnprocessableEntity, err.Error()}
	}
	return nil
}
