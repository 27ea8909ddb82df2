// Package catalog loads the movie catalog from the two IMDb-style TSV
// sources and serves lookups over the joined result. The join on tconst is an
// inner join: a movie without rating data can never pass the quality gate, so
// it is excluded at load time. Malformed rows are rejected at this boundary
// rather than propagated as loosely-typed data.
package catalog
