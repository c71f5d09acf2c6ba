package web

import (
	"bytes"
	"io"
	"net/http"
)

// RenderFunc renders an error page body for the given status code,
// reporting whether it produced one.
type RenderFunc func(w io.Writer, statusCode int) bool

// ErrorHandler captures 404 and 500 responses from the wrapped handler
// and replaces their bodies with the site's error pages.
func ErrorHandler(h http.Handler, render RenderFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseWriter{
			ResponseWriter: w,
			render:         render,
		}
		h.ServeHTTP(writer, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	render  RenderFunc
	noWrite bool
	err     error
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.render != nil && (statusCode == http.StatusNotFound || statusCode == http.StatusInternalServerError) {
		var buf bytes.Buffer
		if w.render(&buf, statusCode) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Del("Content-Length")
			w.ResponseWriter.WriteHeader(statusCode)
			w.noWrite = true
			_, w.err = w.ResponseWriter.Write(buf.Bytes())
			return
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
