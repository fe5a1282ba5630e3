// Package implementation tracks whether design objects have been implemented.
//
// An object is marked implemented by copying its current state into the
// snapshot store. Later comparisons report what changed since then:
//
//	result, err := svc.CompareNpc(ctx, "npc-1", nil) // loads the npc from storage
//	if err != nil {
//	    return err
//	}
//	if !result.SnapshotExists {
//	    // never marked implemented
//	}
//	diffs, err := svc.FormatCompareResult(ctx, result.Differences)
//
// Markers live inside maps. CompareMarker looks the marker up in the stored map
// and compares it with the snapshot of the same marker variant.
//
// # Routes
//
//	GET  /implementation/:kind/:id/compare[?raw=true]
//	GET  /implementation/:kind/:id/status
//	POST /implementation/:kind/:id/mark
//	GET  /implementation/maps/:mapId/markers/:markerKind/:markerId/compare
//	POST /implementation/maps/:mapId/markers/:markerKind/:markerId/mark
package implementation
