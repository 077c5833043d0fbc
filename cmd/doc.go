// Package cmd implements the command-line interface for tasklight.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the Google Tasks tools
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
