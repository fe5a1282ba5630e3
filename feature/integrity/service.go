package integrity

import (
	"context"

	"impl-tracker/core/storage"
	"impl-tracker/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns the missing snapshot folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing snapshot folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckDocuments verifies the documents table schema.
func (s *Service) CheckDocuments() (*checks.DocumentsReport, error) {
	return checks.CheckDocuments(s.db)
}

// FixDocuments migrates the documents table.
func (s *Service) FixDocuments() error {
	if err := checks.FixDocuments(s.db); err != nil {
		return err
	}
	s.logger.Info("Migrated documents table")
	return nil
}

// CheckSnapshots returns snapshots whose object no longer exists.
func (s *Service) CheckSnapshots(ctx context.Context) ([]string, error) {
	return checks.OrphanedSnapshots(ctx, s.client, s.bucket, s.db)
}
