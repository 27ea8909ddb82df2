// Package library persists the two membership lists: watched and
// watch-later. Items are thin annotated references into the catalog keyed by
// entry id; the catalog itself is never duplicated here. Watched adds are
// upserts (latest review wins), watch-later adds are idempotent, and an entry
// present in the watched list is never queued for later.
package library
