package domain

// SourceDocument is a stylesheet source read from disk together with its fingerprint.
// It is read fresh on every resolution; nothing caches it in memory.
type SourceDocument struct {
	Path        string
	Text        []byte
	Fingerprint Fingerprint
}
