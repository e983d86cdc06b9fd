package utils

import (
	"path"
	"strings"

	"github.com/MKhiriev/go-upnode/models"
)

// ResolveRequestPath maps a decoded URL pathname onto a [models.ResolvedTarget].
//
// The pathname is joined onto "/" so that ".." elements and duplicate
// separators collapse and can never climb above the root. A pathname ending
// in "/" (or in a "." / ".." element) denotes a directory and yields an empty
// Filename. The empty pathname resolves to the root itself.
func ResolveRequestPath(pathname string) models.ResolvedTarget {
	normalized := path.Join("/", pathname)

	if normalized == "/" || isDirectoryReference(pathname) {
		return models.ResolvedTarget{
			Pathname:  normalized,
			Directory: normalized,
		}
	}

	return models.ResolvedTarget{
		Pathname:  normalized,
		Directory: path.Dir(normalized),
		Filename:  path.Base(normalized),
	}
}

func isDirectoryReference(pathname string) bool {
	if strings.HasSuffix(pathname, "/") {
		return true
	}

	last := pathname[strings.LastIndex(pathname, "/")+1:]
	return last == "." || last == ".."
}
