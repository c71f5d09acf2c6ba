// Package site loads the site configuration that drives the static
// sections of the portfolio: hero, about, skills, resume, portfolio,
// services, and contact. Each section is a plain data bag handed to
// the templates for a single render pass.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the site configuration file at the site root.
const ConfigFile = "site.toml"

// Duration wraps time.Duration so it can be written as "24h" in TOML.
type Duration time.Duration

// String formats the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	*d = Duration(p)
	return err
}

// Config contains everything read from the site.toml file.
type Config struct {
	Title         string            `toml:"title"`         // site title
	Description   string            `toml:"description"`   // meta description
	BaseURL       string            `toml:"baseurl"`       // canonical base URL, no trailing slash
	Expires       Duration          `toml:"expires"`       // expiry for rendered pages
	StaticExpires Duration          `toml:"staticexpires"` // expiry for static assets
	Headers       map[string]string `toml:"headers"`       // extra response headers

	Hero      Hero            `toml:"hero"`
	About     About           `toml:"about"`
	Skills    []Skill         `toml:"skills"`
	Resume    []TimelineItem  `toml:"resume"`
	Portfolio []PortfolioItem `toml:"portfolio"`
	Services  []Service       `toml:"services"`
	Contact   Contact         `toml:"contact"`
	Social    []SocialLink    `toml:"social"`
	Comments  Comments        `toml:"comments"`
}

// Hero is the banner section at the top of the home page.
type Hero struct {
	Name     string `toml:"name"`
	Tagline  string `toml:"tagline"`
	Intro    string `toml:"intro"`
	Portrait string `toml:"portrait"`
}

// About describes the author.
type About struct {
	Heading string `toml:"heading"`
	Body    string `toml:"body"`
	Image   string `toml:"image"`
}

// Skill is rendered as a labelled progress bar.
type Skill struct {
	Name    string `toml:"name"`
	Percent int    `toml:"percent"` // 0-100
}

// TimelineItem is one entry of the resume timeline.
type TimelineItem struct {
	Period string `toml:"period"`
	Title  string `toml:"title"`
	Place  string `toml:"place"`
	Body   string `toml:"body"`
}

// PortfolioItem is one tile in the portfolio grid.
type PortfolioItem struct {
	Title      string   `toml:"title"`
	Categories []string `toml:"categories"`
	Image      string   `toml:"image"`
	Link       string   `toml:"link"`
}

// Service is one offered service with an icon.
type Service struct {
	Icon  string `toml:"icon"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Contact holds the contact section details.
type Contact struct {
	Heading string `toml:"heading"`
	Email   string `toml:"email"`
	Phone   string `toml:"phone"`
	Address string `toml:"address"`
}

// SocialLink is one social icon in the footer and hero.
type SocialLink struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
	Icon string `toml:"icon"`
}

// Comments configures the third-party comment widget embedded on post
// pages. Empty Repo disables the widget.
type Comments struct {
	Script    string `toml:"script"`    // client script URL
	Repo      string `toml:"repo"`      // repository identifier
	IssueTerm string `toml:"issueterm"` // issue matching strategy
	Theme     string `toml:"theme"`     // widget theme name
	Target    string `toml:"target"`    // container element id
}

// Load reads the site configuration from fsys. A missing file is not an
// error; the zero config is returned so the site still serves.
func Load(fsys fs.FS) (*Config, error) {
	var cfg Config
	b, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("site: cannot read config: %w", err)
	}
	err = toml.Unmarshal(b, &cfg)
	if err != nil {
		return nil, fmt.Errorf("site: cannot parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills the comment widget defaults so a minimal config
// only needs the repository identifier.
func (c *Config) applyDefaults() {
	if c.Comments.Repo == "" {
		return
	}
	if c.Comments.Script == "" {
		c.Comments.Script = "https://utteranc.es/client.js"
	}
	if c.Comments.IssueTerm == "" {
		c.Comments.IssueTerm = "pathname"
	}
	if c.Comments.Theme == "" {
		c.Comments.Theme = "github-light"
	}
	if c.Comments.Target == "" {
		c.Comments.Target = "comments"
	}
}
