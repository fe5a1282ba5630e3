package models

import "impl-tracker/core/compare"

// KartaMap is a map with its markers.
type KartaMap struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	NpcMarkers   []*NpcMarker   `json:"npcMarkers"`
	ItemMarkers  []*ItemMarker  `json:"itemMarkers"`
	QuestMarkers []*QuestMarker `json:"questMarkers"`
	NoteMarkers  []*NoteMarker  `json:"noteMarkers"`
}

// Marker is implemented by every marker variant.
type Marker interface {
	compare.Comparable

	// MarkerID returns the id of the marker within its map.
	MarkerID() string
	// MarkerKind returns the variant of the marker.
	MarkerKind() MarkerKind
}

// NewMarker returns an empty marker of the given kind, or nil for an unknown kind.
func NewMarker(kind MarkerKind) Marker {
	switch kind {
	case MarkerNpc:
		return &NpcMarker{}
	case MarkerItem:
		return &ItemMarker{}
	case MarkerQuest:
		return &QuestMarker{}
	case MarkerNote:
		return &NoteMarker{}
	default:
		return nil
	}
}

// FindMarker returns the marker of the given kind and id, or nil.
func (m *KartaMap) FindMarker(kind MarkerKind, id string) Marker {
	switch kind {
	case MarkerNpc:
		for _, marker := range m.NpcMarkers {
			if marker.ID == id {
				return marker
			}
		}
	case MarkerItem:
		for _, marker := range m.ItemMarkers {
			if marker.ID == id {
				return marker
			}
		}
	case MarkerQuest:
		for _, marker := range m.QuestMarkers {
			if marker.ID == id {
				return marker
			}
		}
	case MarkerNote:
		for _, marker := range m.NoteMarkers {
			if marker.ID == id {
				return marker
			}
		}
	}
	return nil
}

// Position is the location of a marker on the map.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NpcMarker places an npc on a map.
type NpcMarker struct {
	ID      string `json:"id"`
	NpcID   string `json:"npcId"`
	NpcName string `json:"npcName"`
	Position
}

var npcMarkerSchema = compare.NewSchema[*NpcMarker]("npc_marker").
	Value("NpcName", func(m *NpcMarker) any { return m.NpcName }).
	Value("X", func(m *NpcMarker) any { return m.X }).
	Value("Y", func(m *NpcMarker) any { return m.Y })

func (m *NpcMarker) CompareSchema() compare.Classifier { return npcMarkerSchema }
func (m *NpcMarker) MarkerID() string                    { return m.ID }
func (m *NpcMarker) MarkerKind() MarkerKind              { return MarkerNpc }

// ItemMarker places an item on a map.
type ItemMarker struct {
	ID     string `json:"id"`
	ItemID string `json:"itemId"`
	Position
}

var itemMarkerSchema = compare.NewSchema[*ItemMarker]("item_marker").
	Value("ItemId", func(m *ItemMarker) any { return m.ItemID }, compare.Resolve(compare.ResolveItemName)).
	Value("X", func(m *ItemMarker) any { return m.X }).
	Value("Y", func(m *ItemMarker) any { return m.Y })

func (m *ItemMarker) CompareSchema() compare.Classifier { return itemMarkerSchema }
func (m *ItemMarker) MarkerID() string                    { return m.ID }
func (m *ItemMarker) MarkerKind() MarkerKind              { return MarkerItem }

// QuestMarker places a quest location on a map.
type QuestMarker struct {
	ID        string `json:"id"`
	QuestID   string `json:"questId"`
	QuestName string `json:"questName"`
	Name      string `json:"name"`
	Position
}

var questMarkerSchema = compare.NewSchema[*QuestMarker]("quest_marker").
	Value("QuestName", func(m *QuestMarker) any { return m.QuestName }).
	Value("Name", func(m *QuestMarker) any { return m.Name }).
	Value("X", func(m *QuestMarker) any { return m.X }).
	Value("Y", func(m *QuestMarker) any { return m.Y })

func (m *QuestMarker) CompareSchema() compare.Classifier { return questMarkerSchema }
func (m *QuestMarker) MarkerID() string                    { return m.ID }
func (m *QuestMarker) MarkerKind() MarkerKind              { return MarkerQuest }

// NoteMarker is a free text annotation on a map.
type NoteMarker struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Position
}

var noteMarkerSchema = compare.NewSchema[*NoteMarker]("note_marker").
	Value("Name", func(m *NoteMarker) any { return m.Name }).
	Value("Description", func(m *NoteMarker) any { return m.Description }, compare.Text("CompareDifferenceLongTextChanged")).
	Value("Color", func(m *NoteMarker) any { return m.Color }).
	Value("X", func(m *NoteMarker) any { return m.X }).
	Value("Y", func(m *NoteMarker) any { return m.Y })

func (m *NoteMarker) CompareSchema() compare.Classifier { return noteMarkerSchema }
func (m *NoteMarker) MarkerID() string                    { return m.ID }
func (m *NoteMarker) MarkerKind() MarkerKind              { return MarkerNote }
