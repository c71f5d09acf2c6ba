package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/alibstrd/dzulfikar-ali/post"
)

// blog routes /blog/ to the index and /blog/{slug} to post pages.
func blog(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/blog"), "/")
	if strings.Contains(slug, "/") {
		notFound(w, r)
		return
	}
	posts, err := cachedPosts()
	if err != nil {
		log.Printf("blog: %s", err)
		serverError(w, r, err.Error())
		return
	}
	published := posts.Published(time.Now())
	if slug == "" {
		blogIndex(w, r, published)
		return
	}
	blogPost(w, r, published, slug)
}

// blogIndex renders the list of published posts, optionally narrowed
// by a ?category= filter.
func blogIndex(w http.ResponseWriter, r *http.Request, published post.Posts) {
	shown := published
	category := r.URL.Query().Get("category")
	if category != "" {
		shown = shown.FilterCategory(category)
	}
	d := pageData{
		Site:       siteCfg,
		Title:      "Blog",
		Path:       r.URL.Path,
		Posts:      shown,
		Categories: published.Categories(),
		Category:   category,
		Breadcrumbs: []crumb{
			{Label: "Home", Href: "/"},
			{Label: "Blog"},
		},
	}
	render(w, r, "blog", d)
}

// blogPost renders a single post page. Drafts and future-dated posts
// are not served until they are published.
func blogPost(w http.ResponseWriter, r *http.Request, published post.Posts, slug string) {
	var found *post.Post
	for i := range published {
		if published[i].Slug == slug {
			found = &published[i]
			break
		}
	}
	if found == nil {
		notFound(w, r)
		return
	}
	templateName := "post"
	if found.Template != "" {
		templateName = found.Template
	}
	d := pageData{
		Site:  siteCfg,
		Title: found.Title,
		Path:  r.URL.Path,
		Posts: published,
		Post:  found,
		Breadcrumbs: []crumb{
			{Label: "Home", Href: "/"},
			{Label: "Blog", Href: "/blog/"},
			{Label: found.Title},
		},
	}
	render(w, r, templateName, d)
}
