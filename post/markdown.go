package post

import (
	"html/template"

	"github.com/russross/blackfriday/v2"
)

// renderMarkdown converts a markdown body into HTML.
func renderMarkdown(b []byte) template.HTML {
	return template.HTML(blackfriday.Run(b, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))
}
