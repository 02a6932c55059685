// Package cli holds the plumbing shared by the md2slides and slides2pdf
// commands: the injectable environment, logging setup, exit codes, error
// hints and signal handling.
package cli
