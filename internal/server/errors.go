package server

import (
	"net/http"

	"github.com/matzehuels/hallway/pkg/errors"
)

// statusByCode maps error codes to HTTP statuses. Unlisted codes are 500.
var statusByCode = map[errors.Code]int{
	errors.ErrCodeInvalidInput:  http.StatusBadRequest,
	errors.ErrCodeInvalidFormat: http.StatusBadRequest,
	errors.ErrCodeInvalidPlan:   http.StatusUnprocessableEntity,
	errors.ErrCodeUnknownHall:   http.StatusUnprocessableEntity,
	errors.ErrCodeUnreachable:   http.StatusUnprocessableEntity,
	errors.ErrCodeNotFound:      http.StatusNotFound,
	errors.ErrCodeTimeout:       http.StatusGatewayTimeout,
	errors.ErrCodeCanceled:      http.StatusRequestTimeout,
}

type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusFor returns the HTTP status of a classified error.
func statusFor(err error) int {
	if status, ok := statusByCode[errors.GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func toErrorBody(err error) errorBody {
	return errorBody{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = errors.Classify(err)
	body := toErrorBody(err)
	body.RequestID = requestIDFrom(r.Context())
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", body.RequestID)
		body.Message = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: body})
}
