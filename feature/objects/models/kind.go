package models

import (
	"fmt"
	"strings"
)

// Kind identifies an object kind that can be marked implemented.
type Kind string

const (
	KindNpc    Kind = "npc"
	KindItem   Kind = "item"
	KindSkill  Kind = "skill"
	KindDialog Kind = "dialog"
	KindQuest  Kind = "quest"
	KindMarker Kind = "marker"
	// KindMap holds whole maps; markers are compared inside them.
	KindMap Kind = "map"
)

// ObjectKinds lists the kinds stored as standalone documents.
var ObjectKinds = []Kind{KindNpc, KindItem, KindSkill, KindDialog, KindQuest}

// ParseKind parses a standalone object kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	for _, known := range ObjectKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown object kind %q", s)
}

// ParseDocumentKind parses a kind stored as a document: a standalone object
// kind or map.
func ParseDocumentKind(s string) (Kind, error) {
	if Kind(strings.ToLower(s)) == KindMap {
		return KindMap, nil
	}
	return ParseKind(s)
}

// MarkerKind identifies a marker variant on a map.
type MarkerKind string

const (
	MarkerNpc   MarkerKind = "npc"
	MarkerItem  MarkerKind = "item"
	MarkerQuest MarkerKind = "quest"
	MarkerNote  MarkerKind = "note"
)

// MarkerKinds lists all marker variants.
var MarkerKinds = []MarkerKind{MarkerNpc, MarkerItem, MarkerQuest, MarkerNote}

// ParseMarkerKind parses a marker variant.
func ParseMarkerKind(s string) (MarkerKind, error) {
	k := MarkerKind(strings.ToLower(s))
	for _, known := range MarkerKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown marker kind %q", s)
}
