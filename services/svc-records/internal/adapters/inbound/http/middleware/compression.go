package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/architeacher/filtersort/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	encodingGzip   = "gzip"
	encodingBrotli = "br"

	compressionAlgorithmKey = "compression.algorithm"
	httpCompressionTotal    = "http_compression"
	httpCompressionSaved    = "http_compression_saved_bytes"
)

// Equal quality values are settled in this order.
var serverEncodings = []string{encodingGzip, encodingBrotli}

var (
	gzipPool = sync.Pool{New: func() any {
		w, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)

		return w
	}}
	brotliPool = sync.Pool{New: func() any {
		return brotli.NewWriterLevel(io.Discard, brotli.DefaultCompression)
	}}
)

type CompressionOptions struct {
	// MinSize is the smallest body, in bytes, worth compressing.
	MinSize int
	// ContentTypes lists the media types that get compressed.
	ContentTypes []string
}

// Compression encodes response bodies with gzip or brotli, whichever the
// client prefers. Bodies are buffered, so streaming handlers should not sit
// behind it.
func Compression(opts CompressionOptions, client metrics.Client) func(http.Handler) http.Handler {
	if len(opts.ContentTypes) == 0 {
		opts.ContentTypes = []string{"application/json"}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
			if encoding == "" {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			buffered := &bufferedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(buffered, r)

			body := buffered.body.Bytes()
			if len(body) < opts.MinSize || !compressible(w.Header().Get("Content-Type"), opts.ContentTypes) {
				w.WriteHeader(buffered.statusCode)
				_, _ = w.Write(body)

				return
			}

			var compressed bytes.Buffer
			if err := encode(&compressed, encoding, body); err != nil {
				w.WriteHeader(buffered.statusCode)
				_, _ = w.Write(body)

				return
			}

			w.Header().Set("Content-Encoding", encoding)
			w.Header().Set("Content-Length", strconv.Itoa(compressed.Len()))
			w.WriteHeader(buffered.statusCode)
			_, _ = w.Write(compressed.Bytes())

			if client != nil {
				attr := attribute.String(compressionAlgorithmKey, encoding)
				client.Inc(r.Context(), httpCompressionTotal, int64(1), attr)
				client.Inc(r.Context(), httpCompressionSaved, int64(len(body)-compressed.Len()), attr)
			}
		})
	}
}

func encode(dst *bytes.Buffer, encoding string, body []byte) error {
	switch encoding {
	case encodingBrotli:
		bw := brotliPool.Get().(*brotli.Writer)
		defer brotliPool.Put(bw)

		bw.Reset(dst)
		if _, err := bw.Write(body); err != nil {
			return err
		}

		return bw.Close()
	default:
		gw := gzipPool.Get().(*gzip.Writer)
		defer gzipPool.Put(gw)

		gw.Reset(dst)
		if _, err := gw.Write(body); err != nil {
			return err
		}

		return gw.Close()
	}
}

// negotiateEncoding picks the supported encoding with the highest quality
// value. It returns "" when the client accepts neither.
func negotiateEncoding(header string) string {
	qualities := make(map[string]float64)

	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}

			quality = parsed
		}

		qualities[name] = quality
	}

	best, bestQuality := "", 0.0

	for _, encoding := range serverEncodings {
		quality, ok := qualities[encoding]
		if !ok {
			quality, ok = qualities["*"]
		}

		if ok && quality > bestQuality {
			best, bestQuality = encoding, quality
		}
	}

	return best
}

func compressible(contentType string, allowed []string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return slices.Contains(allowed, mediaType)
}

type bufferedResponseWriter struct {
	http.ResponseWriter
	body        bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func (w *bufferedResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.statusCode = code
	w.wroteHeader = true
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true

	return w.body.Write(b)
}
