package middleware_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/architeacher/filtersort/pkg/metrics"
	"github.com/architeacher/filtersort/services/svc-records/internal/adapters/inbound/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	t.Parallel()

	largeJSON := `{"data":"` + strings.Repeat("abcdefgh", 200) + `"}`

	cases := []struct {
		name             string
		acceptEncoding   string
		contentType      string
		body             string
		status           int
		expectedEncoding string
	}{
		{
			name:             "gzip when requested",
			acceptEncoding:   "gzip",
			contentType:      "application/json",
			body:             largeJSON,
			status:           http.StatusOK,
			expectedEncoding: "gzip",
		},
		{
			name:             "brotli when preferred",
			acceptEncoding:   "gzip;q=0.5, br",
			contentType:      "application/json",
			body:             largeJSON,
			status:           http.StatusOK,
			expectedEncoding: "br",
		},
		{
			name:             "gzip wins a tie",
			acceptEncoding:   "br, gzip",
			contentType:      "application/json",
			body:             largeJSON,
			status:           http.StatusOK,
			expectedEncoding: "gzip",
		},
		{
			name:             "wildcard respects explicit rejection",
			acceptEncoding:   "gzip;q=0, *",
			contentType:      "application/json",
			body:             largeJSON,
			status:           http.StatusOK,
			expectedEncoding: "br",
		},
		{
			name:           "no accepted encoding",
			acceptEncoding: "deflate",
			contentType:    "application/json",
			body:           largeJSON,
			status:         http.StatusOK,
		},
		{
			name:           "small bodies stay plain",
			acceptEncoding: "gzip",
			contentType:    "application/json",
			body:           `{"data":[]}`,
			status:         http.StatusOK,
		},
		{
			name:           "other media types stay plain",
			acceptEncoding: "gzip",
			contentType:    "text/plain; version=0.0.4",
			body:           largeJSON,
			status:         http.StatusOK,
		},
		{
			name:             "error status is kept",
			acceptEncoding:   "gzip",
			contentType:      "application/json; charset=utf-8",
			body:             largeJSON,
			status:           http.StatusServiceUnavailable,
			expectedEncoding: "gzip",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.Compression(
				middleware.CompressionOptions{MinSize: 256},
				metrics.NewPrometheusClient("test"),
			)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/entities/users/records", nil)
			req.Header.Set("Accept-Encoding", tc.acceptEncoding)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, tc.expectedEncoding, rec.Header().Get("Content-Encoding"))
			require.Equal(t, tc.body, decode(t, tc.expectedEncoding, rec.Body))
		})
	}
}

func decode(t *testing.T, encoding string, body io.Reader) string {
	t.Helper()

	var reader io.Reader

	switch encoding {
	case "gzip":
		gr, err := gzip.NewReader(body)
		require.NoError(t, err)

		reader = gr
	case "br":
		reader = brotli.NewReader(body)
	default:
		reader = body
	}

	decoded, err := io.ReadAll(reader)
	require.NoError(t, err)

	return string(decoded)
}
