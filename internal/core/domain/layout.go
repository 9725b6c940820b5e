package domain

const (
	// NativeExt is the extension of stylesheet sources handled by the parser.
	NativeExt = ".sass"

	// PassthroughExt is the extension of plain stylesheets that are imported as-is.
	PassthroughExt = ".css"

	// PartialPrefix marks a source file meant only for inclusion by others.
	PartialPrefix = "_"

	// EntrySuffix is appended to a source base name to form its cache entry name.
	EntrySuffix = "c"

	// DefaultCacheDirName is the default cache root, relative to the working directory.
	DefaultCacheDirName = ".sass-cache"

	// ConfigFileName is the name of the optional options file.
	ConfigFileName = "stylecache.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
