package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/architeacher/filtersort/pkg/logger"
	"go.opentelemetry.io/otel/trace"
)

const (
	apiVersion = "v1"

	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	codeNotFound           = "NOT_FOUND"
	codeInternalError      = "INTERNAL_ERROR"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"

	// W3C traceparent: {version}-{trace-id}-{parent-id}-{flags}
	traceparentTraceIDStart = 3
	traceparentTraceIDEnd   = 35
	traceparentMinLength    = 55
)

type (
	ResponseMeta struct {
		RequestID  string `json:"requestId"`
		TraceID    string `json:"traceId,omitempty"`
		APIVersion string `json:"apiVersion"`
	}

	EnvelopedResponse struct {
		Data any          `json:"data"`
		Meta ResponseMeta `json:"meta"`
	}

	errorResponse struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
)

func NewMeta(r *http.Request) ResponseMeta {
	return ResponseMeta{
		RequestID:  logger.RequestIDFromContext(r.Context()),
		TraceID:    extractTraceID(r),
		APIVersion: apiVersion,
	}
}

// extractTraceID prefers the active span and falls back to the traceparent
// header when tracing is disabled.
func extractTraceID(r *http.Request) string {
	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	traceparent := r.Header.Get("traceparent")
	if len(traceparent) < traceparentMinLength {
		return ""
	}

	return traceparent[traceparentTraceIDStart:traceparentTraceIDEnd]
}

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, errorResponse{Code: code, Message: message})
}
