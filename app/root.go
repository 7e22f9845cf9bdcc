// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-lawfirm-admin",
	Short: "GoLawFirm-Admin is a marketing site and content admin for a law firm",
	Long: `GoLawFirm-Admin serves the public marketing pages of a law firm and an
authenticated admin area for managing attorneys, services, blog posts,
contact submissions, modal content and site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
