package checks

import (
	"fmt"

	"impl-tracker/core/database"
	"impl-tracker/feature/implementation/store"

	"gorm.io/gorm"
)

// DocumentsReport is the result of the documents table check.
type DocumentsReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
}

// ExpectedDocumentColumns returns the columns gorm maps store.Document to.
func ExpectedDocumentColumns(db *gorm.DB) ([]string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(&store.Document{}); err != nil {
		return nil, fmt.Errorf("failed to parse document model: %w", err)
	}
	return stmt.Schema.DBNames, nil
}

// CheckDocuments verifies that the documents table has every mapped column.
func CheckDocuments(db *gorm.DB) (*DocumentsReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	expected, err := ExpectedDocumentColumns(db)
	if err != nil {
		return nil, err
	}

	missing, err := database.MissingColumns(db, store.DocumentsTable, expected)
	if err != nil {
		return nil, err
	}

	return &DocumentsReport{
		Table:          store.DocumentsTable,
		Matched:        len(missing) == 0,
		MissingColumns: append([]string{}, missing...),
	}, nil
}

// FixDocuments creates or migrates the documents table.
func FixDocuments(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return store.NewDocuments(db).Migrate()
}
