// Package integrity provides health checks of the storage the tracker relies on.
//
// # Checks Provided
//
//   - Structure: the snapshot folders exist in the bucket (snapshots/npc, snapshots/item, ...).
//   - Documents: the documents table has every column of the document model.
//   - Snapshots: lists object snapshots whose object no longer exists.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/documents : Runs documents table check (supports ?fix=true).
//   - GET /integrity/snapshots : Lists orphaned snapshots.
package integrity
