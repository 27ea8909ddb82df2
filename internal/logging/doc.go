// Package logging builds the application's slog loggers. Output goes to
// stdout and optionally a file under the configured log directory; format is
// console text or JSON. Attribute helpers keep call sites terse.
package logging
