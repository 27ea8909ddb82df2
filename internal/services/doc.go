// Package services defines the shared error taxonomy used across the
// application. Sentinel markers tag errors by class so the interaction layer
// can decide between re-prompting and aborting with errors.Is checks instead
// of string matching.
package services
