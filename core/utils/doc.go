// Package utils provides common utility functions for the implementation tracker.
// It includes helper functions for type conversion and nil checks that are shared
// by the comparison engine and the HTTP layer.
package utils
