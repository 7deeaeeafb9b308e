package response

import (
	"github.com/gin-gonic/gin"
)

// OK writes {success:true, data} merged with any extra top-level fields.
func OK(c *gin.Context, status int, data interface{}, extra gin.H) {
	body := gin.H{"success": true, "data": data}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Message writes {success:true, message, data}.
func Message(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

// Fail writes {success:false, message, error}. A nil err omits the error field.
func Fail(c *gin.Context, status int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(status, body)
}
