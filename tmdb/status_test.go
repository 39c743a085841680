package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		expected Status
	}{
		{
			name:     "plain object",
			outcome:  Outcome{Body: []byte(`{"id":550,"title":"Fight Club"}`), HTTPStatus: http.StatusOK},
			expected: StatusOK,
		},
		{
			name:     "array body",
			outcome:  Outcome{Body: []byte(`[1,2,3]`), HTTPStatus: http.StatusOK},
			expected: StatusOK,
		},
		{
			name:     "zero http status treated as success",
			outcome:  Outcome{Body: []byte(`{"id":1}`)},
			expected: StatusOK,
		},
		{
			name:     "service not found code on 200",
			outcome:  Outcome{Body: []byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`), HTTPStatus: http.StatusOK},
			expected: StatusNotFound,
		},
		{
			name:     "invalid api key",
			outcome:  Outcome{Body: []byte(`{"status_code":7,"status_message":"Invalid API key","success":false}`), HTTPStatus: http.StatusUnauthorized},
			expected: StatusUnauthorized,
		},
		{
			name:     "service success code",
			outcome:  Outcome{Body: []byte(`{"status_code":1,"status_message":"Success."}`), HTTPStatus: http.StatusCreated},
			expected: StatusOK,
		},
		{
			name:     "item updated code",
			outcome:  Outcome{Body: []byte(`{"status_code":12,"status_message":"The item/record was updated successfully."}`), HTTPStatus: http.StatusCreated},
			expected: StatusOK,
		},
		{
			name:     "internal error code",
			outcome:  Outcome{Body: []byte(`{"status_code":11,"status_message":"Internal error"}`), HTTPStatus: http.StatusInternalServerError},
			expected: StatusServerError,
		},
		{
			name:     "unknown service code on error status",
			outcome:  Outcome{Body: []byte(`{"status_code":999}`), HTTPStatus: http.StatusNotFound},
			expected: StatusNotFound,
		},
		{
			name:     "unknown service code on success status",
			outcome:  Outcome{Body: []byte(`{"status_code":999}`), HTTPStatus: http.StatusOK},
			expected: StatusUnknownError,
		},
		{
			name:     "rate limited",
			outcome:  Outcome{Body: []byte(`{"status_code":25}`), HTTPStatus: http.StatusTooManyRequests},
			expected: StatusUnknownError,
		},
		{
			name:     "empty body on 200",
			outcome:  Outcome{HTTPStatus: http.StatusOK},
			expected: StatusUnknownError,
		},
		{
			name:     "invalid json on 200",
			outcome:  Outcome{Body: []byte(`{"id":`), HTTPStatus: http.StatusOK},
			expected: StatusUnknownError,
		},
		{
			name:     "html error page on 502",
			outcome:  Outcome{Body: []byte(`<html>bad gateway</html>`), HTTPStatus: http.StatusBadGateway},
			expected: StatusServerError,
		},
		{
			name:     "forbidden without body",
			outcome:  Outcome{HTTPStatus: http.StatusForbidden},
			expected: StatusUnauthorized,
		},
		{
			name:     "not found object without status code",
			outcome:  Outcome{Body: []byte(`{"errors":["not found"]}`), HTTPStatus: http.StatusNotFound},
			expected: StatusNotFound,
		},
		{
			name:     "context deadline",
			outcome:  Outcome{Err: fmt.Errorf("request failed: %w", context.DeadlineExceeded)},
			expected: StatusTimeout,
		},
		{
			name:     "network timeout",
			outcome:  Outcome{Err: timeoutError{}},
			expected: StatusTimeout,
		},
		{
			name:     "malformed url",
			outcome:  Outcome{Err: fmt.Errorf("%w: bad", ErrMalformedURL)},
			expected: StatusMalformedURL,
		},
		{
			name:     "connection refused",
			outcome:  Outcome{Err: errors.New("connection refused")},
			expected: StatusUnknownError,
		},
		{
			name:     "transport error wins over body",
			outcome:  Outcome{Body: []byte(`{"id":1}`), HTTPStatus: http.StatusOK, Err: errors.New("reset")},
			expected: StatusUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.outcome))
		})
	}
}

func TestClassifyReturnsServiceMessage(t *testing.T) {
	status, code, msg := classify(Outcome{
		Body:       []byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`),
		HTTPStatus: http.StatusNotFound,
	})
	assert.Equal(t, StatusNotFound, status)
	assert.Equal(t, 34, code)
	assert.Equal(t, "The resource you requested could not be found.", msg)
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusOK, "OK"},
		{StatusMalformedURL, "MALFORMED_URL"},
		{StatusTimeout, "TIMEOUT"},
		{StatusUnauthorized, "UNAUTHORIZED"},
		{StatusNotFound, "NOT_FOUND"},
		{StatusServerError, "SERVER_ERROR"},
		{StatusUnknownError, "UNKNOWN_ERROR"},
		{Status(99), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatusErrorIs(t *testing.T) {
	err := &StatusError{Status: StatusNotFound, Endpoint: "/movie/1", Code: 34, Message: "not found"}

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.True(t, err.IsNotFound())
	assert.False(t, err.IsUnauthorized())
	assert.Equal(t, "tmdb: /movie/1: NOT_FOUND (code 34): not found", err.Error())

	wrapped := &StatusError{Status: StatusTimeout, Err: context.DeadlineExceeded}
	assert.ErrorIs(t, wrapped, ErrTimeout)
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
}
