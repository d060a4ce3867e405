package utils

import "github.com/gin-gonic/gin"

/*
* Wraps successful payloads in the { data } envelope
 */
func SuccessResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

/*
* Wraps errors in the { message } envelope
 */
func FailedResponse(err error) gin.H {
	return gin.H{"message": err.Error()}
}

func MessageResponse(msg string) gin.H {
	return gin.H{"message": msg}
}
