// Package store persists the objects tracked by the implementation feature.
//
// Two stores are involved:
//
//   - Documents holds the current state of every object in the database, one
//     row per kind and id with the object serialized as JSON. It also backs
//     NameResolver, which turns item and skill ids into display names.
//   - Snapshots holds the state at the time an object was marked implemented,
//     as JSON files in the storage bucket below "snapshots/".
//
// Snapshot keys:
//
//	snapshots/<kind>/<id>.json
//	snapshots/marker/<mapId>/<markerKind>/<markerId>.json
package store
