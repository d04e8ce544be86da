// Package root contains the root command for the application
package root

import (
	"fjacquet/sepa-pain/internal/config"
	"fjacquet/sepa-pain/internal/currencyutils"
	"fjacquet/sepa-pain/internal/fileutils"
	"fjacquet/sepa-pain/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sepa-pain",
		Short: "A CLI tool to generate SEPA payment-initiation XML files (pain.001 / pain.008).",
		Long: `sepa-pain generates ISO 20022 payment-initiation XML documents:
SEPA credit transfers (pain.001.001.03) and SEPA direct debits
(pain.008.001.02) from a YAML/CSV batch description.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sepa-pain!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all internal packages
			xmlutils.SetLogger(Log)
			fileutils.SetLogger(Log)
			currencyutils.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input batch description file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output XML file (stdout when empty)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Verify count and control-sum consistency of the generated document")
}
