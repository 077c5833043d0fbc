package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the tasklight application
var rootCmd = &cobra.Command{
	Use:   "tasklight",
	Short: "Exposes Google Tasks as MCP tools for AI assistants",
	Long: `tasklight is a Model Context Protocol (MCP) server that exposes a
Google Tasks list as a small set of tools (create, list, delete, complete)
and a readable task-list resource.

Credentials are expected to be pre-provisioned: the server consumes an
already-issued OAuth client ID, client secret and refresh token and lets
the Google client library refresh the access token transparently.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tasklight version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
