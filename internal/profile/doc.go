// Package profile derives the user's taste summary from the watched list:
// top genres, top emotions, and the era bucket holding the plurality of
// watched years. Derivation is pure and recomputed whenever the watched set
// changes; nothing here is incrementally patched.
package profile
