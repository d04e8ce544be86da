// Package debit handles generation of pain.008 direct debit files
package debit

import (
	"fjacquet/sepa-pain/cmd/common"
	"fjacquet/sepa-pain/cmd/root"
	"fjacquet/sepa-pain/internal/sepa"

	"github.com/spf13/cobra"
)

// Cmd represents the debit command
var Cmd = &cobra.Command{
	Use:   "debit",
	Short: "Generate a SEPA direct debit file (pain.008.001.02)",
	Long:  `Generate a SEPA direct debit initiation document from a batch description file.`,
	Run:   debitFunc,
}

func debitFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Direct debit command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	if err := common.Generate(sepa.DirectDebitMessage, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log); err != nil {
		root.Log.Fatalf("Error generating direct debit file: %v", err)
	}
	root.Log.Info("Direct debit file generated successfully!")
}
