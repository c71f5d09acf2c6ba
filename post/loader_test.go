package post

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"hello-world.md": &fstest.MapFile{
			Data: []byte(`---
title: Hello World
date: "2023-02-24"
category:
  - Web Development
cover: /images/blog/hello.jpg
thumb: /images/blog/sm/hello.jpg
---
# Hi

This is my [site](https://example.com).
`),
		},
		"second_post.md": &fstest.MapFile{
			Data: []byte(`---
title: Second Post
date: "2023-05-03"
category: [Go, Web Development]
---
Body text.
`),
		},
		"toml-post.md": &fstest.MapFile{
			Data: []byte(`+++
title = "Toml Post"
date = "2022-12-01T10:30:00Z"
category = ["Notes"]
+++
Older entry.
`),
		},
	}
}

func TestLoad(t *testing.T) {
	s := NewStore(testFS())
	posts, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i := 0; i < len(posts)-1; i++ {
		if posts[i].Date.Before(posts[i+1].Date) {
			t.Errorf("posts not sorted: %q (%s) before %q (%s)",
				posts[i].Slug, posts[i].Date, posts[i+1].Slug, posts[i+1].Date)
		}
	}
	if posts[0].Slug != "second-post" {
		t.Errorf("expected the May post first, got %q", posts[0].Slug)
	}
	if posts[1].Slug != "hello-world" {
		t.Errorf("expected the February post second, got %q", posts[1].Slug)
	}

	p := posts[1]
	if p.Title != "Hello World" {
		t.Errorf("unexpected title %q", p.Title)
	}
	want := time.Date(2023, 2, 24, 0, 0, 0, 0, time.UTC)
	if !p.Date.Equal(want) {
		t.Errorf("expected date %s, got %s", want, p.Date)
	}
	if len(p.Categories) != 1 || p.Categories[0] != "Web Development" {
		t.Errorf("unexpected categories %v", p.Categories)
	}
	if p.Cover != "/images/blog/hello.jpg" || p.Thumb != "/images/blog/sm/hello.jpg" {
		t.Errorf("unexpected images %q %q", p.Cover, p.Thumb)
	}
	if !strings.Contains(string(p.Content), "<h1") {
		t.Errorf("markdown heading not rendered: %q", p.Content)
	}
	if strings.Contains(string(p.Content), "title:") {
		t.Errorf("front matter leaked into content: %q", p.Content)
	}
}

func TestLoadSkipsMissingTitle(t *testing.T) {
	fsys := testFS()
	fsys["no-title.md"] = &fstest.MapFile{
		Data: []byte("---\ndate: \"2023-01-01\"\n---\nbody\n"),
	}
	fsys["plain.md"] = &fstest.MapFile{
		Data: []byte("no front matter at all\n"),
	}
	posts, err := NewStore(fsys).Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range posts {
		if p.Slug == "no-title" || p.Slug == "plain" {
			t.Errorf("untitled post %q should have been excluded", p.Slug)
		}
	}
	if len(posts) != 3 {
		t.Errorf("expected 3 posts, got %d", len(posts))
	}
}

func TestLoadSkipsBadDate(t *testing.T) {
	fsys := testFS()
	fsys["bad-date.md"] = &fstest.MapFile{
		Data: []byte("---\ntitle: Bad Date\ndate: \"next tuesday\"\n---\nbody\n"),
	}
	posts, err := NewStore(fsys).Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range posts {
		if p.Slug == "bad-date" {
			t.Error("post with malformed date should have been excluded")
		}
	}
}

func TestLoadUndatedUsesModTime(t *testing.T) {
	mt := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	fsys := fstest.MapFS{
		"undated.md": &fstest.MapFile{
			Data:    []byte("---\ntitle: Undated\n---\nbody\n"),
			ModTime: mt,
		},
	}
	posts, err := NewStore(fsys).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if !posts[0].Date.Equal(mt) {
		t.Errorf("expected mod time %s, got %s", mt, posts[0].Date)
	}
}

func TestLoadIgnoresNonMarkdown(t *testing.T) {
	fsys := testFS()
	fsys["notes.txt"] = &fstest.MapFile{Data: []byte("not a post")}
	fsys[".hidden.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Hidden\n---\n")}
	posts, err := NewStore(fsys).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 3 {
		t.Errorf("expected 3 posts, got %d", len(posts))
	}
}

func TestGet(t *testing.T) {
	s := NewStore(testFS())
	p, err := s.Get("hello-world")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Hello World" {
		t.Errorf("unexpected title %q", p.Title)
	}
	_, err = s.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := map[string]bool{
		"2023-05-03":           true,
		"2023-05-03T08:15:00Z": true,
		"2023-05-03 08:15:00":  true,
		"03/05/2023":           false,
		"":                     false,
	}
	for in, ok := range tests {
		_, err := parseDate(in)
		if ok && err != nil {
			t.Errorf("parseDate(%q): unexpected error %v", in, err)
		}
		if !ok && err == nil {
			t.Errorf("parseDate(%q): expected error", in)
		}
	}
}
