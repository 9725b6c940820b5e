package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
)

var _ ports.ImportResolver = (*Resolver)(nil)

// Resolver implements ports.ImportResolver against the local filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// FindImport resolves an @import reference.
//
// A reference ending in domain.PassthroughExt is returned untouched. Otherwise
// each load path is searched, in order, for the partial form of the reference
// and then the plain form, both with domain.NativeExt. When nothing matches,
// a reference that named domain.NativeExt explicitly is an error; any other
// reference falls back to a passthrough stylesheet of the same name.
func (r *Resolver) FindImport(reference string, loadPaths []string) (string, error) {
	name := reference
	wasNative := false

	switch {
	case strings.HasSuffix(reference, domain.NativeExt):
		name = strings.TrimSuffix(reference, domain.NativeExt)
		wasNative = true
	case strings.HasSuffix(reference, domain.PassthroughExt):
		return reference, nil
	}

	if found, ok := findFullPath(name+domain.NativeExt, loadPaths); ok {
		return found, nil
	}
	if !wasNative {
		return name + domain.PassthroughExt, nil
	}

	return "", domain.NewSyntaxError(
		"File to import not found or unreadable: "+reference+".", 0,
	).WithCause(domain.ErrImportNotFound)
}

// findFullPath returns the first readable candidate for name, trying the
// partial name before the plain one inside each load path.
func findFullPath(name string, loadPaths []string) (string, bool) {
	partial := partialName(name)

	for _, dir := range loadPaths {
		for _, candidate := range [...]string{partial, name} {
			full := filepath.Join(dir, candidate)
			if isReadableFile(full) {
				return full, true
			}
		}
	}
	return "", false
}

// partialName prefixes the last '/'-separated segment of name with domain.PartialPrefix.
func partialName(name string) string {
	idx := strings.LastIndexByte(name, '/')
	return name[:idx+1] + domain.PartialPrefix + name[idx+1:]
}

func isReadableFile(path string) bool {
	f, err := os.Open(path) //nolint:gosec // Path is built from caller-supplied load paths
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // Read-only probe

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
