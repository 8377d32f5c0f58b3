package web

import (
	"embed"
	"io/fs"
	"path"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS roots the embedded templates at "templates", so template
// names read "catalog/index" instead of "templates/catalog/index".
type templateEmbedFS struct {
	content embed.FS
}

// Open implements fs.FS.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
