// Package process holds best-effort helpers for cleaning up the headless
// browser launched for PDF rendering.
package process
