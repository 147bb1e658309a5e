// Package cli holds what src2pdf and md2pdf share: the injectable
// Environment, exit codes, browser flags merged over the YAML config,
// output writing, and interrupt handling.
package cli
