package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack
// trace, and returns a 500 to the client with the standard opaque body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.InternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
