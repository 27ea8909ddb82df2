// Package session wires the catalog, library store, classifiers, and
// recommendation engine into a single locked handle that the CLI commands
// operate against.
package session
