package main

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/alibstrd/dzulfikar-ali/post"
)

var sitemapTpl *template.Template

// defaultSitemap lists one URL per line.
const defaultSitemap = `{{range .}}{{.}}
{{end}}`

// loadSitemapTemplate parses the site's sitemap.txt template if present,
// returning true if it was found. Otherwise the default URL-per-line
// template is used.
func loadSitemapTemplate(fsys fs.FS) (bool, error) {
	b, err := fs.ReadFile(fsys, "sitemap.txt")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
		sitemapTpl, err = template.New("sitemap").Parse(defaultSitemap)
		return false, err
	}
	sitemapTpl, err = template.New("sitemap").Parse(string(b))
	return true, err
}

// sitemap is an http.HandlerFunc that renders the site map.
func sitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := cachedPosts()
	if err != nil {
		log.Printf("sitemap: %s", err)
		serverError(w, r, err.Error())
		return
	}
	var out bytes.Buffer
	err = sitemapTpl.Execute(&out, siteURLs(posts.Published(time.Now())))
	if err != nil {
		log.Printf("sitemap: %s", err)
		serverError(w, r, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, err = w.Write(out.Bytes())
	if err != nil {
		log.Printf("sitemap: %s", err)
	}
}

// siteURLs lists every page URL exactly once: the home page, the blog
// index, and one URL per published post.
func siteURLs(posts post.Posts) []string {
	base := strings.TrimSuffix(siteCfg.BaseURL, "/")
	urls := []string{base + "/", base + "/blog/"}
	for _, p := range posts {
		urls = append(urls, base+"/blog/"+p.Slug)
	}
	return urls
}
