package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vmihailenco/msgpack/v4"
)

const mimeMsgpack = "application/x-msgpack"

// responseWithEncoding writes obj as msgpack when the client accepts it and
// as json otherwise
func responseWithEncoding(c *gin.Context, code int, obj interface{}) {
	accept := c.GetHeader("Accept")
	switch {
	case strings.Contains(accept, mimeMsgpack):
		data, err := msgpack.Marshal(obj)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, errorInternalServer)
			return
		}
		c.Data(code, mimeMsgpack, data)
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
