package config

// File represents the structure of the stylecache.yaml options file.
// Every field is optional; unset fields fall back to the defaults.
type File struct {
	CacheLocation string         `yaml:"cache_location"`
	Cache         *bool          `yaml:"cache"`
	LoadPaths     []string       `yaml:"load_paths"`
	Parser        map[string]any `yaml:"parser"`
}
