// Package loader registers application features and mounts their routes.
//
// A feature implements Name, IsEnabled and Load. The Manager refuses two
// features with the same name and skips disabled ones:
//
//	mgr := loader.NewManager(log)
//	mgr.Register(implementation.NewFeature(documents, snapshots, f, log))
//	mgr.Register(integrity.NewFeature(client, bucket, log, db))
//	err := mgr.LoadAll(app)
package loader
