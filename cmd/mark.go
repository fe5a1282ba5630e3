package cmd

import (
	"fmt"

	"impl-tracker/feature/objects/models"

	"github.com/spf13/cobra"
)

// markCmd represents the mark command
var markCmd = &cobra.Command{
	Use:   "mark [kind] [id]",
	Short: "Mark an object as implemented",
	Long:  `Stores the current state of an object as its snapshot. Later comparisons report changes relative to this state.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseKind(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.impl.Service().MarkImplemented(cmd.Context(), kind, args[1]); err != nil {
			return fmt.Errorf("marking failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s marked as implemented\n", kind, args[1])
		return nil
	},
}

// markMarkerCmd represents the mark marker command
var markMarkerCmd = &cobra.Command{
	Use:   "marker [mapId] [markerKind] [markerId]",
	Short: "Mark a map marker as implemented",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseMarkerKind(args[1])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.impl.Service().MarkMarkerImplemented(cmd.Context(), args[0], args[2], kind); err != nil {
			return fmt.Errorf("marking failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s marker %s on map %s marked as implemented\n", kind, args[2], args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(markCmd)
	markCmd.AddCommand(markMarkerCmd)
}
