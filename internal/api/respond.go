package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidekit/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

var statusByCode = map[errors.Code]int{
	errors.ErrCodeInvalidInput:     http.StatusBadRequest,
	errors.ErrCodeInvalidDocument:  http.StatusUnprocessableEntity,
	errors.ErrCodeInvalidTemplate:  http.StatusUnprocessableEntity,
	errors.ErrCodeInvalidTheme:     http.StatusUnprocessableEntity,
	errors.ErrCodeInvalidPosition:  http.StatusUnprocessableEntity,
	errors.ErrCodeInvalidEdge:      http.StatusBadRequest,
	errors.ErrCodeInvalidFormat:    http.StatusBadRequest,
	errors.ErrCodeInvalidPath:      http.StatusBadRequest,
	errors.ErrCodeInvalidConfig:    http.StatusInternalServerError,
	errors.ErrCodeNotFound:         http.StatusNotFound,
	errors.ErrCodeTemplateNotFound: http.StatusNotFound,
	errors.ErrCodeLayoutNotFound:   http.StatusNotFound,
	errors.ErrCodeSlideNotFound:    http.StatusNotFound,
	errors.ErrCodeFileNotFound:     http.StatusNotFound,
	errors.ErrCodeRejected:         http.StatusConflict,
	errors.ErrCodeStore:            http.StatusBadGateway,
	errors.ErrCodeTimeout:          http.StatusGatewayTimeout,
	errors.ErrCodeUnsupported:      http.StatusNotImplemented,
}

// statusFor maps an error code to an HTTP status. Unknown codes are 500.
func statusFor(code errors.Code) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errors.New(errors.ErrCodeInvalidInput, "decode request: %v", err)
	}
	return nil
}

func errNotFound(r *http.Request) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path)
}
