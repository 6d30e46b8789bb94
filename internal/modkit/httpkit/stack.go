package httpkit

import (
	"net/http"

	"walletscan/internal/platform/net/middleware"
)

// CommonStack is the middleware every versioned API mount shares
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
	}
}
