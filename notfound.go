package main

import (
	"fmt"
	"io"
	"net/http"
)

// notFound renders our 404 page.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	if !renderErrorPage(w, http.StatusNotFound) {
		fmt.Fprintln(w, http.StatusText(http.StatusNotFound))
	}
}

// renderErrorPage writes the "notfound" or "error" template body,
// reporting whether it succeeded. It also backs web.ErrorHandler for
// the static file server.
func renderErrorPage(w io.Writer, status int) bool {
	name := "error"
	if status == http.StatusNotFound {
		name = "notfound"
	}
	t := tpl.Lookup(name)
	if t == nil {
		return false
	}
	d := pageData{
		Site:    siteCfg,
		Title:   http.StatusText(status),
		Message: http.StatusText(status),
	}
	return t.Execute(w, d) == nil
}
