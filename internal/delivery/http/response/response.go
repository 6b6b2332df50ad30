package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// TokenBody is the JSON shape of successful register/login responses.
type TokenBody struct {
	Token string `json:"token"`
}

// JSON writes a plain JSON body. Handlers return entities and lists
// directly, without an envelope, to keep the wire contract stable for
// existing clients.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error writes an {"error": ...} body with the given status code.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// Token writes a {"token": ...} body.
func Token(c *gin.Context, code int, key string) {
	c.JSON(code, TokenBody{Token: key})
}
