package utils

// Response messages sent back to the frontend.
const (
	DELETE_SUCCESSFUL               = "Resource has been successfully deleted"
	FORBIDDEN_ACCESS_PRESCRIPTION   = "You are not allowed to carry out this action on a prescription"
	HOME_RESPONSE                   = "Welcome to Prescryber API"
	INCORRECT_PATIENT_EMAIL         = "Incorrect patient email"
	INVALID_RESPONSE                = "This API does not exist or it has been deprecated"
	PATIENT_NOT_ALLOWED             = "Only prescribers are allowed to use this route"
	EMAIL_TAKEN                     = "Sorry, that email is taken"
	PRESCRIPTION_NOT_FOUND          = "Sorry, seems that prescription has been removed."
	SUCCESSFUL_PRESCRIPTION_CREATE  = "Prescription created successfully"
	SUCCESSFUL_USER_REGISTRATION    = "User registration successful"
	UPDATE_SUCCESSFUL               = "Resource successfully updated"
	USER_NOT_FOUND                  = "Sorry, we couldn't find a user with the provided details"
	GENERIC_SUCCESS                 = "Successful operation"
	INVALID_TOKEN                   = "Session expired, please login again"
	PASSWORD_SENT                   = "Password sent to email address"
)
