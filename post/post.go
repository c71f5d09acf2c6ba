// Package post reads blog entries from a directory of markdown files
// with front matter and presents them as immutable records.
package post

import (
	"html/template"
	"path"
	"strings"
	"time"
	"unicode"
)

// Post is one blog entry, backed by one markdown source file.
// It is immutable once loaded; changes require editing the file.
type Post struct {
	Slug       string        // URL key derived from the file name
	Title      string        // title from front matter
	Date       time.Time     // publication date
	Categories []string      // category labels from front matter
	Cover      string        // cover image path
	Thumb      string        // thumbnail image path
	Template   string        // optional template override
	Draft      bool          // drafts are hidden from listings
	Content    template.HTML // rendered markdown body
}

// HasCategory reports whether the post carries the given category label.
// Matching is case-insensitive.
func (p Post) HasCategory(c string) bool {
	for _, cat := range p.Categories {
		if strings.EqualFold(cat, c) {
			return true
		}
	}
	return false
}

// Posts is a list of posts ordered by date, most recent first.
type Posts []Post

// Len is part of sort.Interface.
func (p Posts) Len() int {
	return len(p)
}

// Swap is part of sort.Interface.
func (p Posts) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

// Less is part of sort.Interface. Equal dates fall back to the slug so
// that the order is stable across loads.
func (p Posts) Less(i, j int) bool {
	if p[i].Date.Equal(p[j].Date) {
		return p[i].Slug < p[j].Slug
	}
	return p[j].Date.Before(p[i].Date)
}

// Published filters out drafts and posts dated after now.
func (p Posts) Published(now time.Time) Posts {
	r := make(Posts, 0, len(p))
	for _, itm := range p {
		if itm.Draft || now.Before(itm.Date) {
			continue
		}
		r = append(r, itm)
	}
	return r
}

// FilterCategory trims the list down to posts carrying the given category.
func (p Posts) FilterCategory(c string) Posts {
	var r Posts
	for _, itm := range p {
		if itm.HasCategory(c) {
			r = append(r, itm)
		}
	}
	return r
}

// Recent returns up to n of the most recent posts.
func (p Posts) Recent(n int) Posts {
	if n > len(p) {
		n = len(p)
	}
	return p[:n]
}

// Categories returns the distinct category labels across all posts,
// in order of first appearance.
func (p Posts) Categories() []string {
	var (
		seen = make(map[string]bool)
		r    []string
	)
	for _, itm := range p {
		for _, c := range itm.Categories {
			k := strings.ToLower(c)
			if !seen[k] {
				seen[k] = true
				r = append(r, c)
			}
		}
	}
	return r
}

// Slug derives a URL-safe slug from a file name or title. The extension
// is dropped, letters are lowered, and runs of other characters collapse
// into single dashes.
func Slug(name string) string {
	name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	var (
		b    strings.Builder
		dash bool
	)
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
