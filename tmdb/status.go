package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
)

// Status is the outcome of a single API call
type Status int

const (
	// StatusOK indicates a well-formed payload with no error signal
	StatusOK Status = iota
	// StatusMalformedURL indicates the request URL could not be built
	StatusMalformedURL
	// StatusTimeout indicates the transport deadline was exceeded
	StatusTimeout
	// StatusUnauthorized indicates the service rejected the credentials
	StatusUnauthorized
	// StatusNotFound indicates the requested resource does not exist
	StatusNotFound
	// StatusServerError indicates a failure on the service side
	StatusServerError
	// StatusUnknownError covers everything else, including local parse failures
	StatusUnknownError
)

// String returns the string representation of a Status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMalformedURL:
		return "MALFORMED_URL"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusUnauthorized:
		return "UNAUTHORIZED"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusServerError:
		return "SERVER_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// MarshalText renders the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is what the transport returned for one request
type Outcome struct {
	Body       []byte
	HTTPStatus int
	Err        error
}

// serviceCodes maps the service's status_code values to their documented
// HTTP equivalents. Codes absent from the table classify as unknown.
var serviceCodes = map[int]int{
	1:  http.StatusOK,      // success
	2:  http.StatusNotImplemented,
	3:  http.StatusUnauthorized,
	4:  http.StatusMethodNotAllowed,
	5:  http.StatusUnprocessableEntity,
	6:  http.StatusNotFound,
	7:  http.StatusUnauthorized,
	8:  http.StatusForbidden,
	9:  http.StatusServiceUnavailable,
	10: http.StatusUnauthorized,
	11: http.StatusInternalServerError,
	12: http.StatusCreated, // item updated
	13: http.StatusOK,      // item deleted
	14: http.StatusUnauthorized,
	15: http.StatusInternalServerError,
	16: http.StatusUnauthorized,
	17: http.StatusUnauthorized,
	18: http.StatusBadRequest,
	19: http.StatusNotAcceptable,
	20: http.StatusUnprocessableEntity,
	21: http.StatusUnprocessableEntity,
	22: http.StatusBadRequest,
	23: http.StatusBadRequest,
	24: http.StatusGatewayTimeout,
	25: http.StatusTooManyRequests,
	26: http.StatusBadRequest,
	27: http.StatusBadRequest,
	28: http.StatusUnauthorized,
	29: http.StatusUnauthorized,
	30: http.StatusUnauthorized,
	31: http.StatusUnauthorized,
	32: http.StatusUnauthorized,
	33: http.StatusUnauthorized,
	34: http.StatusNotFound,
	35: http.StatusUnauthorized,
	36: http.StatusUnauthorized,
	37: http.StatusNotFound,
	38: http.StatusUnauthorized,
	39: http.StatusForbidden,
	40: http.StatusBadRequest,
	41: http.StatusForbidden,
	42: http.StatusBadRequest,
	43: http.StatusServiceUnavailable,
	44: http.StatusInternalServerError,
	45: http.StatusForbidden,
	46: http.StatusServiceUnavailable,
	47: http.StatusBadRequest,
}

// serviceError is the error document the service returns on failure
type serviceError struct {
	StatusCode    *int   `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       *bool  `json:"success"`
}

// Classify maps a transport outcome onto the Status taxonomy. It never
// panics and always returns exactly one Status.
func Classify(o Outcome) Status {
	status, _, _ := classify(o)
	return status
}

// classify additionally returns the service code and message when present
func classify(o Outcome) (Status, int, string) {
	if o.Err != nil {
		return classifyTransportError(o.Err), 0, ""
	}

	body := bytes.TrimSpace(o.Body)
	if len(body) == 0 || !json.Valid(body) {
		if isSuccess(o.HTTPStatus) {
			return StatusUnknownError, 0, ""
		}
		return statusFromHTTP(o.HTTPStatus), 0, ""
	}

	if body[0] == '{' {
		var se serviceError
		if err := json.Unmarshal(body, &se); err == nil && se.StatusCode != nil {
			code := *se.StatusCode
			if httpCode, ok := serviceCodes[code]; ok {
				return statusFromHTTP(httpCode), code, se.StatusMessage
			}
			if !isSuccess(o.HTTPStatus) {
				return statusFromHTTP(o.HTTPStatus), code, se.StatusMessage
			}
			return StatusUnknownError, code, se.StatusMessage
		}
	}

	if !isSuccess(o.HTTPStatus) {
		return statusFromHTTP(o.HTTPStatus), 0, ""
	}
	return StatusOK, 0, ""
}

func classifyTransportError(err error) Status {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return StatusTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StatusTimeout
	}
	if errors.Is(err, ErrMalformedURL) {
		return StatusMalformedURL
	}
	return StatusUnknownError
}

// isSuccess treats a zero status as success; stub transports often leave it unset
func isSuccess(code int) bool {
	return code == 0 || (code >= 200 && code < 300)
}

func statusFromHTTP(code int) Status {
	switch {
	case isSuccess(code):
		return StatusOK
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return StatusUnauthorized
	case code == http.StatusNotFound:
		return StatusNotFound
	case code >= 500 && code < 600:
		return StatusServerError
	default:
		return StatusUnknownError
	}
}
