package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/octofit-tracker/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	apiVersion  = "2.0"
	errorDomain = "octofit-tracker"

	internalErrorMessage = "internal server error"
)

// envelope follows the Google JSON style guide: exactly one of data or error is set.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	target error
	code   int
	status string
	reason string
}

var errorClasses = []errorClass{
	{target: usecase.ErrInvalidInput, code: http.StatusBadRequest, status: "INVALID_ARGUMENT", reason: "invalidInput"},
	{target: usecase.ErrNotFound, code: http.StatusNotFound, status: "NOT_FOUND", reason: "notFound"},
	{target: usecase.ErrDependencyUnavailable, code: http.StatusServiceUnavailable, status: "UNAVAILABLE", reason: "dependencyUnavailable"},
}

var internalClass = errorClass{code: http.StatusInternalServerError, status: "INTERNAL", reason: "internalError"}

func classifyError(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c
		}
	}
	return internalClass
}

func newErrorEnvelope(class errorClass, message string) envelope {
	return envelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    class.code,
			Message: message,
			Status:  class.status,
			Errors: []errorItem{
				{Domain: errorDomain, Reason: class.reason, Message: message},
			},
		},
	}
}

// writeJSON buffers the whole body first; Content-Length is always exact.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode response")
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, envelope{APIVersion: apiVersion, Data: data})
}

// writeError renders err with its mapped status. Unclassified errors never
// leak their text to the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classifyError(err)
	if class.code == http.StatusInternalServerError {
		writeInternalError(ctx, w)
		return
	}
	writeJSON(ctx, w, class.code, newErrorEnvelope(class, err.Error()))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, newErrorEnvelope(internalClass, internalErrorMessage))
}
