package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/GregMSThompson/ifsc-finder/internal/errs"
	"github.com/GregMSThompson/ifsc-finder/internal/response"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
)

type recoverMiddleware struct {
	ResponseHandler response.ResponseHandler
}

func NewRecoverMiddleware(rh response.ResponseHandler) *recoverMiddleware {
	return &recoverMiddleware{ResponseHandler: rh}
}

// Recover turns a panic into the generic JSON 500 body so a failed lookup
// never drops the connection.
func (m *recoverMiddleware) Recover(next http.Handler) http.Handler {
	return m.recoverWith(next, func(rec any) error {
		return fmt.Errorf("panic: %v", rec)
	})
}

// RecoverAs answers a panic with an InternalError carrying the route's own
// message instead of the generic one.
func (m *recoverMiddleware) RecoverAs(operation, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.recoverWith(next, func(rec any) error {
			return errs.NewInternalError(operation, message, fmt.Errorf("panic: %v", rec))
		})
	}
}

func (m *recoverMiddleware) recoverWith(next http.Handler, toErr func(rec any) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))
			m.ResponseHandler.HandleError(w, r, toErr(rec))
		}()

		next.ServeHTTP(w, r)
	})
}
