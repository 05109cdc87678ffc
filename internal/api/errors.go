package api

import (
	"encoding/json"
	"net/http"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    errs.Code `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errs.Code) int {
	switch code {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidDimension, errs.ErrCodeInvalidGraph,
		errs.ErrCodeInvalidShape, errs.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errs.ErrCodeNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errs.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errs.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errs.ErrCodeInternal
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = errs.UserMessage(err)
	body.RequestID = requestIDFrom(r.Context())

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", body.RequestID)
	} else {
		s.logger.Debug("request rejected", "err", err, "request_id", body.RequestID)
	}
	// errorBody holds only strings, so encoding cannot fail.
	_ = writeJSON(w, status, body)
}

// respond writes v as JSON. When v cannot be encoded the client gets a
// coded 500 instead of a success status with an empty body.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInternal, err, "encode response"))
	}
}

// writeJSON encodes v before touching the response, so nothing is written
// when encoding fails.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
	return nil
}
