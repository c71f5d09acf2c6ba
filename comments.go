package main

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alibstrd/dzulfikar-ali/site"
)

// commentsEmbed builds the comment widget markup: one container element
// and one script element configured from the site's comment settings.
// The script is loaded fire-and-forget; if it fails, the container
// simply stays empty. An unset repository disables the widget.
func commentsEmbed(c site.Comments) template.HTML {
	if c.Repo == "" {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<div id=%q>", c.Target)
	fmt.Fprintf(&b, `<script src=%q data-repo=%q data-issue-term=%q data-theme=%q crossorigin="anonymous" async></script>`,
		c.Script, c.Repo, c.IssueTerm, c.Theme)
	b.WriteString("</div>")
	return template.HTML(b.String())
}
