package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reoring/jarkup"
	"github.com/reoring/jarkup/middleware"
)

// DocumentBody decodes the request body as a jarkup document (with
// middleware.DefaultDecodeOpt unless opts are given), stores it in the
// request context and aborts with 400 and the Issues payload on failure.
func DocumentBody(opts ...jarkup.DecodeOpt) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := middleware.Decode(c.Request, opts...)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.FailurePayload(err))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithDocument(c.Request.Context(), doc))
		c.Next()
	}
}

// GetDocument fetches the decoded document from gin.Context.
func GetDocument(c *gin.Context) (jarkup.Document, bool) {
	return middleware.DocumentFromContext(c.Request.Context())
}
