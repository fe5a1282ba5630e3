// Package models defines the design objects tracked for implementation: npcs,
// items, skills, dialogs, quests and map markers.
//
// Every type registers its comparison schema next to its definition. Fields
// that are not registered (ids, bookkeeping) never produce differences.
// Enumerations such as Npc.Type are stored as language keys and are resolved
// for display by the formatter; item and skill references carry an item or
// skill resolve kind so that ids are shown as names.
package models
