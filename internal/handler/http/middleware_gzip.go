package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled; gzip allocation is expensive relative to
// the small JSON bodies this API moves around.
var (
	gzipWriterPool = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaderPool = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip transparently inflates gzip-encoded request bodies and, when the
// client advertises support, deflates the response.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipWriterPool.Put(zw)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, req)
	})
}

// inflateRequestBody swaps the request body for a decompressing reader.
// On malformed gzip data it writes a 400 and reports false.
func inflateRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &pooledBodyReader{zr: zr}
	req.Header.Del("Content-Encoding")
	return true
}

// pooledBodyReader returns its gzip reader to the pool exactly once, when the
// body is closed.
type pooledBodyReader struct {
	zr   *gzip.Reader
	once sync.Once
}

func (r *pooledBodyReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *pooledBodyReader) Close() error {
	var err error
	r.once.Do(func() {
		err = r.zr.Close()
		gzipReaderPool.Put(r.zr)
	})
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
