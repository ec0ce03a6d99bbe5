// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "novera-site",
	Short: "novera-site is the backend of the Novera digital agency website",
	Long: `novera-site serves the JSON API behind the Novera digital agency
website: blog content, contact form submissions and newsletter subscriptions.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
