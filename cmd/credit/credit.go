// Package credit handles generation of pain.001 credit transfer files
package credit

import (
	"fjacquet/sepa-pain/cmd/common"
	"fjacquet/sepa-pain/cmd/root"
	"fjacquet/sepa-pain/internal/sepa"

	"github.com/spf13/cobra"
)

// Cmd represents the credit command
var Cmd = &cobra.Command{
	Use:   "credit",
	Short: "Generate a SEPA credit transfer file (pain.001.001.03)",
	Long:  `Generate a SEPA credit transfer initiation document from a batch description file.`,
	Run:   creditFunc,
}

func creditFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Credit transfer command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	if err := common.Generate(sepa.CreditTransferMessage, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log); err != nil {
		root.Log.Fatalf("Error generating credit transfer file: %v", err)
	}
	root.Log.Info("Credit transfer file generated successfully!")
}
