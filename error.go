package main

import (
	"log"
	"net/http"
)

// serverError renders our error page if the template defines one.
func serverError(w http.ResponseWriter, r *http.Request, errMsg string) {
	errTpl := tpl.Lookup("error")
	if errTpl == nil {
		http.Error(w, errMsg, http.StatusInternalServerError)
		return
	}
	d := pageData{
		Site:    siteCfg,
		Title:   "Server Error",
		Path:    r.URL.Path,
		Message: errMsg,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusInternalServerError)
	err := errTpl.Execute(w, d)
	if err != nil {
		log.Printf("serverError: %s", err)
	}
}
