package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reoring/jarkup"
	"github.com/reoring/jarkup/middleware"
)

// DocumentBody decodes the request body as a jarkup document, stores it in
// the request context, or returns 400 with the Issues payload.
func DocumentBody(opts ...jarkup.DecodeOpt) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			doc, err := middleware.Decode(c.Request(), opts...)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.FailurePayload(err))
			}
			c.SetRequest(c.Request().WithContext(middleware.ContextWithDocument(c.Request().Context(), doc)))
			return next(c)
		}
	}
}

// GetDocument fetches the decoded document from echo.Context.
func GetDocument(c echo.Context) (jarkup.Document, bool) {
	return middleware.DocumentFromContext(c.Request().Context())
}
