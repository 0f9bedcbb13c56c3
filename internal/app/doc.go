// Package app wires a parsed configuration to the maze builder: it owns the
// logger, seeds the generator, optionally verifies the result and writes the
// edge listing.
package app
