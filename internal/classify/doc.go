// Package classify provides the emotion and sentiment collaborators. The
// Client talks to a hosted inference endpoint; the Lexicon is a deterministic
// offline classifier used standalone or as the Client's fallback. Neither
// path ever surfaces a hard error to callers: classification failures degrade
// to the unknown emotion and to the negative sentiment default.
package classify
