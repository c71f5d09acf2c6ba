package main

import (
	"log"
	"net/http"
	"time"
)

// home renders the single-page portfolio with all of its sections.
// Anything else under "/" is a 404.
func home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		notFound(w, r)
		return
	}
	posts, err := cachedPosts()
	if err != nil {
		log.Printf("home: %s", err)
		serverError(w, r, err.Error())
		return
	}
	d := pageData{
		Site:   siteCfg,
		Title:  siteCfg.Title,
		Path:   r.URL.Path,
		Recent: posts.Published(time.Now()).Recent(3),
	}
	render(w, r, "home", d)
}
