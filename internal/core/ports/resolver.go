package ports

// ImportResolver finds the file an @import reference designates.
//
//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks -source=resolver.go
type ImportResolver interface {
	// FindImport resolves reference against loadPaths, in order.
	// It returns a filesystem path, the reference itself for passthrough
	// stylesheets, or a synthesized plain-stylesheet reference.
	FindImport(reference string, loadPaths []string) (string, error)
}
