package post

import (
	"sort"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"hello-world.md":       "hello-world",
		"Hello World.md":       "hello-world",
		"my_first_post.md":     "my-first-post",
		"posts/Deep File.md":   "deep-file",
		"What's New? 2023.md":  "what-s-new-2023",
		"--weird--.md":         "weird",
		"already-good":         "already-good",
		"Trailing Dots....md":  "trailing-dots",
		"MiXeD-CaSe-Title.md":  "mixed-case-title",
		"100 days of code.md":  "100-days-of-code",
		"emoji 🔥 in name.md":   "emoji-in-name",
		"spaces   between.md":  "spaces-between",
		"dots.in.the.name.md":  "dots-in-the-name",
		"underscores__here.md": "underscores-here",
	}
	for in, want := range tests {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortOrder(t *testing.T) {
	p := Posts{
		{Slug: "b", Date: date(2023, 2, 24)},
		{Slug: "a", Date: date(2023, 5, 3)},
		{Slug: "c", Date: date(2023, 5, 3)},
	}
	sort.Sort(p)
	if p[0].Slug != "a" || p[1].Slug != "c" || p[2].Slug != "b" {
		t.Errorf("unexpected order: %q %q %q", p[0].Slug, p[1].Slug, p[2].Slug)
	}
}

func TestPublished(t *testing.T) {
	now := date(2023, 6, 1)
	p := Posts{
		{Slug: "future", Date: date(2024, 1, 1)},
		{Slug: "draft", Date: date(2023, 1, 1), Draft: true},
		{Slug: "live", Date: date(2023, 5, 3)},
	}
	got := p.Published(now)
	if len(got) != 1 || got[0].Slug != "live" {
		t.Errorf("expected only the live post, got %v", got)
	}
}

func TestFilterCategory(t *testing.T) {
	p := Posts{
		{Slug: "a", Categories: []string{"Go", "Web"}},
		{Slug: "b", Categories: []string{"web"}},
		{Slug: "c"},
	}
	got := p.FilterCategory("Web")
	if len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	if got[0].Slug != "a" || got[1].Slug != "b" {
		t.Errorf("unexpected filter result %v", got)
	}
	if got := p.FilterCategory("Rust"); got != nil {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestCategories(t *testing.T) {
	p := Posts{
		{Categories: []string{"Go", "Web"}},
		{Categories: []string{"web", "Design"}},
	}
	got := p.Categories()
	want := []string{"Go", "Web", "Design"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestRecent(t *testing.T) {
	p := Posts{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}
	if got := p.Recent(2); len(got) != 2 || got[0].Slug != "a" {
		t.Errorf("unexpected recent slice %v", got)
	}
	if got := p.Recent(10); len(got) != 3 {
		t.Errorf("expected all posts, got %v", got)
	}
}
