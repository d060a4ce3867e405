package middleware

import (
	"errors"
	"log"
	"net/http"

	"Prescryber/auth"
	"Prescryber/models"
	"Prescryber/store"
	"Prescryber/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const identityKey = "identity"

// Rejection is a guard's short-circuit result.
type Rejection struct {
	Status  int
	Message string
}

// GuardFunc inspects the request and either allows continuation (nil) or
// rejects it. Guards never write the response themselves.
type GuardFunc func(c *gin.Context) *Rejection

// Guard adapts a GuardFunc into gin middleware. The chain halts
// unconditionally on the first rejection, a guard can never fall through
// after rejecting.
func Guard(fn GuardFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rejection := fn(c); rejection != nil {
			c.AbortWithStatusJSON(rejection.Status, utils.MessageResponse(rejection.Message))
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity a VerifyToken guard attached earlier
// in the chain.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

/*
* Require a token in the x-access-token header
* No token at all means no credential was presented
* Bad or expired tokens are one class to the caller, split only in logs
 */
func VerifyToken(tokens *auth.TokenService) GuardFunc {
	return func(c *gin.Context) *Rejection {
		token := c.GetHeader("x-access-token")
		if token == "" {
			return &Rejection{http.StatusForbidden, http.StatusText(http.StatusForbidden)}
		}

		identity, err := tokens.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				log.Println("Rejected expired token for", c.Request.URL.Path)
			} else {
				log.Println("Rejected invalid token for", c.Request.URL.Path)
			}
			return &Rejection{http.StatusUnauthorized, utils.INVALID_TOKEN}
		}

		c.Set(identityKey, identity)
		return nil
	}
}

// RequirePrescriber gates prescriber-only operations.
func RequirePrescriber(c *gin.Context) *Rejection {
	identity, ok := CurrentIdentity(c)
	if !ok || identity.AccountType != models.AccountTypePrescriber {
		return &Rejection{http.StatusForbidden, utils.PATIENT_NOT_ALLOWED}
	}
	return nil
}

/*
* Look the prescription up by the _id in the body
* Only the prescriber that created it may continue
* The read is discarded, the handler re-reads by _id
 */
func RequireCreator(prescriptions store.PrescriptionStore) GuardFunc {
	return func(c *gin.Context) *Rejection {
		identity, _ := CurrentIdentity(c)

		var body struct {
			ID string `json:"_id"`
		}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			return &Rejection{http.StatusBadRequest, err.Error()}
		}

		prescription, err := prescriptions.FindByID(c.Request.Context(), body.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return &Rejection{http.StatusNotFound, utils.PRESCRIPTION_NOT_FOUND}
			}
			return &Rejection{http.StatusBadGateway, err.Error()}
		}

		if identity.Email != prescription.PrescriberEmail {
			return &Rejection{http.StatusForbidden, utils.FORBIDDEN_ACCESS_PRESCRIPTION}
		}
		return nil
	}
}

/*
* Look the prescription up by the _id path parameter
* Only the patient or the prescriber on the record may view it
 */
func AllowedToView(prescriptions store.PrescriptionStore) GuardFunc {
	return func(c *gin.Context) *Rejection {
		identity, _ := CurrentIdentity(c)

		prescription, err := prescriptions.FindByID(c.Request.Context(), c.Param("_id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return &Rejection{http.StatusNotFound, utils.PRESCRIPTION_NOT_FOUND}
			}
			return &Rejection{http.StatusBadGateway, err.Error()}
		}

		if identity.Email == prescription.PatientEmail || identity.Email == prescription.PrescriberEmail {
			return nil
		}
		return &Rejection{http.StatusForbidden, utils.FORBIDDEN_ACCESS_PRESCRIPTION}
	}
}
