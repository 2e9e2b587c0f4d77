// Package http provides the HTTP handler for the masking protocol endpoint.
package http

import (
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

// createTestContext creates a test Gin context with the given raw request body.
func createTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}
