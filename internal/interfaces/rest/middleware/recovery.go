package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/gp-payment-gateway/internal/application"
	"github.com/DanielPopoola/gp-payment-gateway/internal/interfaces/rest"
)

// Recovery turns a handler panic into the INTERNAL_ERROR envelope. The panic
// is logged with the same request_id the handlers use; http.ErrAbortHandler is
// passed through so net/http can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
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

				ctx := r.Context()
				reqLogger := logger.With("request_id", RequestIDFromContext(ctx))
				reqLogger.ErrorContext(ctx, "panic recovered",
					"panic", rec,
					"route", r.Method+" "+r.URL.Path,
					"stack", string(debug.Stack()),
				)

				rest.WriteError(w, application.NewInternalError(fmt.Errorf("panic: %v", rec)), reqLogger)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
