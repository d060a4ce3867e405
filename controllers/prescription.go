package controllers

import (
	"errors"
	"net/http"

	"Prescryber/middleware"
	"Prescryber/models"
	"Prescryber/services"
	"Prescryber/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PrescriptionController struct {
	Prescriptions *services.PrescriptionService
}

/*
* Payload was validated by the guard chain, bind it again from the cache
* The caller is a prescriber by the time we get here
 */
func (pc *PrescriptionController) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var payload models.PrescriptionPayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.FailedResponse(err))
		return
	}

	prescription, err := pc.Prescriptions.Create(c.Request.Context(), payload, identity)
	if err != nil {
		if errors.Is(err, services.ErrIncorrectPatientEmail) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(gin.H{
		"prescription": prescription,
		"message":      utils.SUCCESSFUL_PRESCRIPTION_CREATE,
	}))
}

// Index lists every prescription in the store. Operator use only.
func (pc *PrescriptionController) Index(c *gin.Context) {
	prescriptions, err := pc.Prescriptions.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"prescriptions": prescriptions}))
}

// Show fetches one prescription; view access was checked by the guard chain.
func (pc *PrescriptionController) Show(c *gin.Context) {
	prescription, err := pc.Prescriptions.Get(c.Request.Context(), c.Param("_id"))
	if err != nil {
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"prescription": prescription}))
}

func (pc *PrescriptionController) Update(c *gin.Context) {
	var payload models.UpdatePrescriptionPayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.FailedResponse(err))
		return
	}

	prescription, err := pc.Prescriptions.Update(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{
		"prescription": prescription,
		"message":      utils.UPDATE_SUCCESSFUL,
	}))
}

// Delete removes a prescription and returns the removed record. Role and
// ownership were gated by the chain.
func (pc *PrescriptionController) Delete(c *gin.Context) {
	var body struct {
		ID string `json:"_id"`
	}
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}

	prescription, err := pc.Prescriptions.Delete(c.Request.Context(), body.ID)
	if err != nil {
		if errors.Is(err, services.ErrPrescriptionNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{
		"prescription": prescription,
		"message":      utils.DELETE_SUCCESSFUL,
	}))
}
