package main

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
)

// containsSpecialFile reports whether name contains a path element starting
// with a period. The name is assumed to be delimited by forward slashes, as
// guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// hidingFS hides dot-files and dot-folders from the wrapped file system.
type hidingFS struct {
	fs.FS
}

// Open opens the named file unless it is hidden.
func (h hidingFS) Open(name string) (fs.File, error) {
	if name != "." && containsSpecialFile(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return h.FS.Open(name)
}

// favicon redirects to the static favicon if the site provides one.
func favicon(fsys fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := fs.Stat(fsys, "static/favicon.ico")
		if errors.Is(err, fs.ErrNotExist) {
			notFound(w, r)
			return
		} else if err != nil {
			serverError(w, r, err.Error())
			return
		}
		http.Redirect(w, r, "/static/favicon.ico", http.StatusPermanentRedirect)
	}
}
