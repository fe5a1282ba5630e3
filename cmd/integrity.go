package cmd

import (
	"context"
	"fmt"
	"os"

	"impl-tracker/core/config"
	"impl-tracker/core/database"
	"impl-tracker/core/logger"
	"impl-tracker/core/storage"
	"impl-tracker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

const (
	checkStructure = "structure"
	checkDocuments = "documents"
	checkSnapshots = "snapshots"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on snapshot storage and the documents table",
	Long:  `Checks if the storage bucket has the snapshot folders, the documents table matches the document model, and no snapshot lost its object.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), "")
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix snapshot folders",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// documentsCmd represents the integrity documents command
var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Check and migrate the documents table",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkDocuments)
	},
}

// snapshotsCmd represents the integrity snapshots command
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List snapshots whose object no longer exists",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkSnapshots)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, documentsCmd, snapshotsCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
	documentsCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the documents table")
}

// runIntegrityChecks runs the named check, or all checks when only is empty.
func runIntegrityChecks(ctx context.Context, only string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// The structure check works without a database
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := integrity.NewService(client, cfg.Storage.Bucket, logg, db)
	run := func(name string) bool { return only == "" || only == name }

	if run(checkStructure) {
		logg.Info("Checking snapshot folders...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if only == checkStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else if only == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if run(checkDocuments) {
		logg.Info("Checking documents table...")
		report, err := svc.CheckDocuments()
		if err != nil {
			logg.Error("Documents check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Documents table matches the document model.")
		} else {
			logg.Warn("Documents table is incomplete", zap.Strings("missing_columns", report.MissingColumns))

			if only == checkDocuments && fixFlag {
				if err := svc.FixDocuments(); err != nil {
					logg.Fatal("Failed to migrate documents table", zap.Error(err))
				}
			} else if only == checkDocuments {
				logg.Info("Run with --fix to migrate the documents table.")
			}
		}
	}

	if run(checkSnapshots) {
		logg.Info("Checking snapshots...")
		orphans, err := svc.CheckSnapshots(ctx)
		if err != nil {
			logg.Error("Snapshots check failed", zap.Error(err))
		} else if len(orphans) == 0 {
			logg.Info("Every snapshot has its object.")
		} else {
			logg.Warn("Snapshots without object", zap.Strings("snapshots", orphans))
		}
	}
}
