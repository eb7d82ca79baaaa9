package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/oauth"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// wireJSON renders API messages with the field names of the proto file, so
// HTTP and gRPC clients see the same shapes.
var wireJSON = protojson.MarshalOptions{UseProtoNames: true}

func writeProto(w http.ResponseWriter, code int, m proto.Message) {
	b, err := wireJSON.Marshal(m)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: common.ErrorInternal.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(b)
}

// statusFor maps a service error to an HTTP status and a client-safe
// message. ok is false for unexpected errors.
func statusFor(err error) (code int, msg string, ok bool) {
	switch {
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, common.ErrConflict.Error(), true
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, common.ErrInvalidCredentials.Error(), true
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, common.ErrTokenExpired.Error(), true
	case errors.Is(err, common.ErrMalformedToken), errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized, common.ErrUnauthenticated.Error(), true
	case errors.Is(err, oauth.ErrExchange):
		return http.StatusUnauthorized, oauth.ErrExchange.Error(), true
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, err.Error(), true
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, common.ErrInvalidOrExpiredToken):
		return http.StatusBadRequest, common.ErrInvalidOrExpiredToken.Error(), true
	case errors.Is(err, common.ErrInvalidAssertion):
		return http.StatusBadRequest, common.ErrInvalidAssertion.Error(), true
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, common.ErrorNotFound.Error(), true
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, err.Error(), true
	default:
		return http.StatusInternalServerError, common.ErrorInternal.Error(), false
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg, ok := statusFor(err)
	if !ok {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, code, errorBody{Error: msg})
}
