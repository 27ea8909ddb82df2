// Package recommend ranks quality-gated catalog entries against the user's
// taste profile. Ranking is a deterministic total order: score, then rating,
// then votes, then id, so identical inputs always produce identical lists.
package recommend
