// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL connections (or SQLite for local use and
// tests) from the application's configuration.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The integrity check uses it to
// verify that the documents table matches the expected layout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "documents")
package database
