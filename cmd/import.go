package cmd

import (
	"fmt"
	"io"
	"os"

	"impl-tracker/feature/objects/models"

	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [kind] [id] [file]",
	Short: "Import the current state of an object or map",
	Long:  `Reads a JSON document (npc, item, skill, dialog, quest or map) from file and stores it as the current state. Use - to read from stdin.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseDocumentKind(args[0])
		if err != nil {
			return err
		}

		var payload []byte
		if args[2] == "-" {
			payload, err = io.ReadAll(cmd.InOrStdin())
		} else {
			payload, err = os.ReadFile(args[2])
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[2], err)
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.impl.Service().ImportDocument(cmd.Context(), kind, args[1], payload); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s imported\n", kind, args[1])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
}
