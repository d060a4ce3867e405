package routes

import (
	"Prescryber/auth"
	"Prescryber/controllers"
	"Prescryber/middleware"
	"Prescryber/store"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the route table needs wired in.
type Deps struct {
	Tokens        *auth.TokenService
	Prescriptions store.PrescriptionStore
	User          *controllers.UserController
	Prescription  *controllers.PrescriptionController
}

/*
* Guards compose strictly left to right per route
* Each route declares its own ordered subset of the chain
 */
func Routes(r *gin.Engine, deps Deps) {
	home := &controllers.HomeController{}
	verifyToken := middleware.Guard(middleware.VerifyToken(deps.Tokens))
	requirePrescriber := middleware.Guard(middleware.RequirePrescriber)
	requireCreator := middleware.Guard(middleware.RequireCreator(deps.Prescriptions))
	allowedToView := middleware.Guard(middleware.AllowedToView(deps.Prescriptions))

	r.GET("/", home.Index)
	r.NoRoute(home.Invalid)

	v1 := r.Group("/v1")

	// auth routes
	v1.POST("/auth/login", deps.User.Login)
	v1.POST("/auth/register",
		middleware.Guard(middleware.ValidateRegistration),
		deps.User.Register)
	v1.POST("/auth/password/send", deps.User.SendPasswordResetCode)
	v1.POST("/auth/password/reset",
		verifyToken,
		deps.User.ResetPassword)
	v1.GET("/auth/check/:email", deps.User.IsEmailAvailable)

	// user routes
	v1.GET("/user", verifyToken, deps.User.GetUser)
	v1.PATCH("/user", verifyToken, deps.User.Update)
	v1.DELETE("/user", verifyToken, deps.User.Delete)
	v1.GET("/user/check/:email",
		verifyToken,
		requirePrescriber,
		deps.User.PatientName)

	// prescription crud routes
	v1.GET("/prescription", verifyToken, deps.User.UserPrescriptions)
	v1.GET("/prescription/:_id",
		verifyToken,
		allowedToView,
		deps.Prescription.Show)
	v1.POST("/prescription",
		verifyToken,
		requirePrescriber,
		middleware.Guard(middleware.ValidatePrescription),
		deps.Prescription.Create)
	v1.PATCH("/prescription",
		verifyToken,
		middleware.Guard(middleware.ValidateUpdatePrescription),
		deps.Prescription.Update)
	v1.DELETE("/prescription",
		verifyToken,
		requirePrescriber,
		requireCreator,
		deps.Prescription.Delete)

	// operator listing, deliberately not narrowed
	v1.GET("/prescriptions", deps.Prescription.Index)
}
