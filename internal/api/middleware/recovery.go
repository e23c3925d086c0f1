package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/ernestofreyreg/law-api/internal/api/response"
)

const redactedStack = "[redacted]"

// Recovery catches panics escaping a handler, logs the failure with the
// full stack, and responds with a uniform 500 envelope. In production
// mode the stack field in the response is replaced with a fixed
// redaction marker; the log always carries the real trace.
func Recovery(logger zerolog.Logger, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				logger.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("stack", stack).
					Msgf("panic recovered: %v", rec)

				if production {
					stack = redactedStack
				}
				response.WriteJSON(w, http.StatusInternalServerError, map[string]any{
					"success": false,
					"error":   fmt.Sprintf("%v", rec),
					"stack":   stack,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
