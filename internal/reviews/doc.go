// Package reviews fetches a representative review for a catalog entry from
// the remote source. Unavailability is a normal outcome, not a failure: the
// recommendation engine treats ErrNotFound and network errors identically.
package reviews
