// Package templates embeds the chat page so rendering works from any
// working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed index.html
var fs embed.FS

func Index() (*template.Template, error) {
	return template.ParseFS(fs, "index.html")
}
