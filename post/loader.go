package post

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrNotFound is returned by Get when no post matches the slug.
var ErrNotFound = errors.New("post not found")

// frontMatter holds data scraped from the top of a markdown file.
// YAML fenced with "---" and TOML fenced with "+++" are both accepted.
type frontMatter struct {
	Title      string   `yaml:"title" toml:"title"`
	Date       string   `yaml:"date" toml:"date"`
	Categories []string `yaml:"category" toml:"category"`
	Cover      string   `yaml:"cover" toml:"cover"`
	Thumb      string   `yaml:"thumb" toml:"thumb"`
	Template   string   `yaml:"template" toml:"template"`
	Draft      bool     `yaml:"draft" toml:"draft"`
}

// dateFormats are the layouts accepted for the date key.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses an ISO-8601-style date from front matter.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Store reads posts from a file system of markdown files.
type Store struct {
	fs fs.FS
}

// NewStore returns a Store reading from fsys. One file is one post.
func NewStore(fsys fs.FS) *Store {
	return &Store{fs: fsys}
}

// Load scans the store and returns all posts sorted by date, most recent
// first. Files with missing or malformed front matter are logged and
// skipped so that one bad file never sinks the whole batch.
func (s *Store) Load() (Posts, error) {
	entries, err := fs.ReadDir(s.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	var posts Posts
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		p, err := s.read(entry.Name())
		if err != nil {
			log.Printf("post: skipping %q: %s", entry.Name(), err)
			continue
		}
		posts = append(posts, *p)
	}
	sort.Sort(posts)
	return posts, nil
}

// Get returns the post with the given slug.
func (s *Store) Get(slug string) (*Post, error) {
	posts, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, fmt.Errorf("post: %q: %w", slug, ErrNotFound)
}

// read parses a single markdown file into a Post.
func (s *Store) read(name string) (*Post, error) {
	b, err := fs.ReadFile(s.fs, name)
	if err != nil {
		return nil, err
	}
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(b), &fm)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return nil, errors.New("missing title")
	}
	p := Post{
		Slug:       Slug(name),
		Title:      fm.Title,
		Categories: fm.Categories,
		Cover:      fm.Cover,
		Thumb:      fm.Thumb,
		Template:   fm.Template,
		Draft:      fm.Draft,
		Content:    renderMarkdown(body),
	}
	if fm.Date != "" {
		p.Date, err = parseDate(fm.Date)
		if err != nil {
			return nil, err
		}
	} else if fi, err := fs.Stat(s.fs, name); err == nil {
		// Undated posts take the file's modification time.
		p.Date = fi.ModTime()
	}
	return &p, nil
}
