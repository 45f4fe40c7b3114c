// Package snakecube holds module-level metadata shared by the CLI and
// build tooling.
package snakecube

// Version is the semantic version of the snakecube module.
const Version = "0.1.0"
