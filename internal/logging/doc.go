// Package logging adapts github.com/rs/zerolog to the small
// Debug/Info/Warn/Error interface core.Engine expects, so the core
// package depends only on that interface and never imports zerolog
// directly.
package logging
