package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// pageFS is the embedded page rooted at static/.
var pageFS fs.FS = func() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}()

// FS returns an http.FileSystem for the embedded page assets.
func FS() http.FileSystem {
	return http.FS(pageFS)
}
