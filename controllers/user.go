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

// UserController binds request payloads, delegates to the services and maps
// service errors onto response statuses.
type UserController struct {
	Users         *services.UserService
	Prescriptions *services.PrescriptionService
}

/*
* Registration payload was already validated by the guard chain
* Bind it again from the cached body and hand over to the service
 */
func (uc *UserController) Register(c *gin.Context) {
	var payload models.RegisterPayload
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utils.FailedResponse(err))
		return
	}

	data, err := uc.Users.Register(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusUnprocessableEntity, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(data))
}

func (uc *UserController) Login(c *gin.Context) {
	var payload models.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}

	data, err := uc.Users.Login(c.Request.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, utils.MessageResponse(http.StatusText(http.StatusUnauthorized)))
		default:
			c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		}
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(data))
}

// GetUser echoes the token snapshot back to the caller.
func (uc *UserController) GetUser(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"user": identity}))
}

// UserPrescriptions lists every prescription the caller participates in.
func (uc *UserController) UserPrescriptions(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	prescriptions, err := uc.Prescriptions.ForUser(c.Request.Context(), identity.Email)
	if err != nil {
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"prescriptions": prescriptions}))
}

func (uc *UserController) Update(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var payload models.UpdateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}

	user, err := uc.Users.Update(c.Request.Context(), identity, payload)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"user": user}))
}

func (uc *UserController) Delete(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	user, err := uc.Users.Delete(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"user": user}))
}

// PatientName lets a prescriber resolve a patient email to a display name.
func (uc *UserController) PatientName(c *gin.Context) {
	name, err := uc.Users.PatientName(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"name": name}))
}

// IsEmailAvailable is the public pre-registration email check.
func (uc *UserController) IsEmailAvailable(c *gin.Context) {
	err := uc.Users.IsEmailAvailable(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusUnprocessableEntity, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"message": utils.GENERIC_SUCCESS}))
}

func (uc *UserController) SendPasswordResetCode(c *gin.Context) {
	var payload models.SendResetCodePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}

	err := uc.Users.SendPasswordResetCode(c.Request.Context(), payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
		case errors.Is(err, services.ErrMailDelivery):
			c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		default:
			c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		}
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"message": utils.PASSWORD_SENT}))
}

// ResetPassword requires a verified token (session or emailed reset token).
func (uc *UserController) ResetPassword(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var payload models.ResetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err))
		return
	}

	err := uc.Users.ResetPassword(c.Request.Context(), identity, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadGateway, utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"message": utils.GENERIC_SUCCESS}))
}
