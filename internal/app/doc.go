// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, then builds the logger, metrics
// registry, member document and progression service, exposing them via the
// Wire struct for commands to use.
package app
