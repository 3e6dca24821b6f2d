// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/chainsafe/invoice-gateway/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/api/payments", http.HandleError(handler.create))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, r, err)
		}
	}
}

type errorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
	RequestID  string `json:"requestId,omitempty"`
}

// DefaultErrorHandler writes err as a JSON error body. Only ServiceError
// messages reach the client; anything else is reported as a generic 500.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		_ = errors.As(apperrors.GeneralError(err), &svcErr)
	}

	resp := errorResponse{
		ErrMsg:     svcErr.Message,
		ErrMsgCode: svcErr.StatusCode(),
	}
	if r != nil {
		resp.RequestID = middleware.GetReqID(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.ErrMsgCode)
	_ = json.NewEncoder(w).Encode(&resp)
}
