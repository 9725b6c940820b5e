// Package build holds build-time information.
package build

// Version is the application version. Cache entries are tagged with it, so
// entries written by a different build are never trusted.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"
