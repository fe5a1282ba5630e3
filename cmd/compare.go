package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"impl-tracker/core/compare"
	"impl-tracker/feature/implementation"
	"impl-tracker/feature/objects/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rawFlag bool

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [kind] [id]",
	Short: "Compare an object with its implemented snapshot",
	Long:  `Loads the current state of an object (npc, item, skill, dialog, quest) and prints the differences to the snapshot taken when it was marked implemented.`,
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
		svc := a.impl.Service()

		result, err := svc.Compare(cmd.Context(), kind, args[1])
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		a.logger.Debug("Compared object", zap.String("kind", string(kind)), zap.String("id", args[1]))
		return printResult(cmd.Context(), cmd, svc, result)
	},
}

// compareMarkerCmd represents the compare marker command
var compareMarkerCmd = &cobra.Command{
	Use:   "marker [mapId] [markerKind] [markerId]",
	Short: "Compare a map marker with its implemented snapshot",
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
		svc := a.impl.Service()

		result, err := svc.CompareMarker(cmd.Context(), args[0], args[2], kind, nil)
		if err != nil {
			return fmt.Errorf("marker comparison failed: %w", err)
		}
		return printResult(cmd.Context(), cmd, svc, result)
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)
	compareCmd.AddCommand(compareMarkerCmd)
	compareCmd.PersistentFlags().BoolVar(&rawFlag, "raw", false, "Print the unformatted difference tree")
}

func printResult(ctx context.Context, cmd *cobra.Command, svc *implementation.Service, result *compare.Result) error {
	var out any = result
	if !rawFlag {
		diffs, err := svc.FormatCompareResult(ctx, result.Differences)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}
		out = implementation.CompareResponse{
			SnapshotExists: result.SnapshotExists,
			Differences:    diffs,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
