package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/alibstrd/dzulfikar-ali/post"
	"github.com/alibstrd/dzulfikar-ali/site"
)

//go:embed default.html
var defaultTemplate string

// crumb is one element of the breadcrumb trail.
type crumb struct {
	Label string
	Href  string
}

// pageData is what is passed to the HTML templates.
type pageData struct {
	Site        *site.Config // section props from site.toml
	Title       string       // page title
	Path        string       // path from URL
	Breadcrumbs []crumb      // empty on pages without a trail
	Posts       post.Posts   // blog index listing
	Post        *post.Post   // single post page
	Recent      post.Posts   // recent posts for the home page
	Categories  []string     // category labels for the index filter
	Category    string       // active category filter
	Message     string       // passed to the error template
}

// tpl stores the site's HTML templates.
var tpl *template.Template

// loadTemplates loads and parses the HTML templates, preferring the
// site's template folder over the embedded defaults.
func loadTemplates(fsys fs.FS) error {
	var err error
	funcMap := template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"now":        time.Now,
		"fmtdate":    fmtDate,
		"prev":       prevPost,
		"next":       nextPost,
		"comments":   func() template.HTML { return commentsEmbed(siteCfg.Comments) },
	}
	fi, err := fs.Stat(fsys, "template")
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		log.Print("No template folder found; using default templates.")
		tpl, err = template.New("site").Funcs(funcMap).Parse(defaultTemplate)
	} else {
		tpl, err = template.New("site").Funcs(funcMap).ParseFS(fsys, "template/*.html")
	}
	if err != nil {
		return fmt.Errorf("loadTemplates: %w", err)
	}
	return nil
}

// render executes the named template and writes the result.
func render(w http.ResponseWriter, r *http.Request, name string, d pageData) {
	var out bytes.Buffer
	err := tpl.ExecuteTemplate(&out, name, d)
	if err != nil {
		log.Printf("render: %s", err)
		serverError(w, r, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write(out.Bytes())
	if err != nil {
		log.Printf("render: %s", err)
	}
}

// fmtDate formats a publication date for display.
func fmtDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// nextPost returns the post after the given slug, towards the present.
func nextPost(p post.Posts, current string) *post.Post {
	for i := range p {
		if p[i].Slug == current {
			if i > 0 {
				return &p[i-1]
			}
			return nil
		}
	}
	return nil
}

// prevPost returns the post before the given slug, towards the past.
func prevPost(p post.Posts, current string) *post.Post {
	for i := range p {
		if p[i].Slug == current {
			if i < len(p)-1 {
				return &p[i+1]
			}
			return nil
		}
	}
	return nil
}
