package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// Asset search roots, in priority order. The unpacked pack directory wins
// over loose files in assets/.
var assetDirs = []string{
	"assets-unpacked",
	"assets",
}

// SetUnpackedDir points asset resolution at the directory the pack was
// extracted to.
func SetUnpackedDir(dir string) {
	assetDirs[0] = dir
}

// ResolveAssetPath finds an asset by relative path across the search roots.
// Falls back to the first root even when the file does not exist, so the
// caller's open error names a sensible path.
func ResolveAssetPath(relPath string) string {
	for _, dir := range assetDirs {
		p := filepath.Join(dir, relPath)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(assetDirs[0], relPath)
}

// FindTexture locates a texture by name, trying the container extension
// first and then plain image formats.
func FindTexture(name string) string {
	if name == "" {
		return ""
	}
	clean := strings.TrimSuffix(name, ".ftex")

	for _, dir := range assetDirs {
		for _, ext := range []string{".ftex", ".png", ".jpg"} {
			p := filepath.Join(dir, clean+ext)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}
