// Package web provides the embedded site assets: page templates under
// templates/ and static files (images, script, stylesheet) under static/.
//
// During development, if the web directory exists on the filesystem it
// is used instead, so edits show up without a rebuild.
package web

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// assets holds the embedded templates and static files.
//
//go:embed templates static
var assets embed.FS

// GetAssets returns a filesystem containing templates/ and static/.
// In development mode (when devPath exists and has a templates directory)
// it returns the live filesystem. Otherwise it returns the embedded assets.
//
// If devPath is empty, it defaults to "./web" (relative to the working
// directory).
func GetAssets(devPath string) fs.FS {
	if devPath == "" {
		devPath = "./web"
	}

	if stat, err := os.Stat(filepath.Join(devPath, "templates")); err == nil && stat.IsDir() {
		return os.DirFS(devPath)
	}

	return assets
}

// Embedded returns the embedded assets, ignoring the filesystem.
func Embedded() fs.FS {
	return assets
}

// GetAssetsWithBase returns assets, checking for development mode at a
// path relative to the given base directory.
func GetAssetsWithBase(baseDir string) fs.FS {
	return GetAssets(filepath.Join(baseDir, "web"))
}
