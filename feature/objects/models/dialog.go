package models

import "impl-tracker/core/compare"

// Dialog is the conversation tree of an npc.
type Dialog struct {
	ID    string        `json:"id"`
	NpcID string        `json:"npcId"`
	Steps []*DialogStep `json:"steps"`
}

var dialogSchema = compare.NewSchema[*Dialog]("dialog").
	Value("NpcId", func(d *Dialog) any { return d.NpcID }).
	List("Steps", func(d *Dialog) []compare.ListComparable { return compare.Items(d.Steps) }, compare.Label("CompareLabelDialogSteps"))

// CompareSchema implements compare.Comparable.
func (d *Dialog) CompareSchema() compare.Classifier { return dialogSchema }

// DialogStep is a single node of a dialog.
type DialogStep struct {
	ID      string          `json:"id"`
	Text    string          `json:"text"`
	Options []*DialogOption `json:"options"`
}

var dialogStepSchema = compare.NewSchema[*DialogStep]("dialog_step").
	Value("Text", func(s *DialogStep) any { return s.Text }, compare.Text("CompareDifferenceLongTextChanged")).
	List("Options", func(s *DialogStep) []compare.ListComparable { return compare.Items(s.Options) })

func (s *DialogStep) CompareSchema() compare.Classifier { return dialogStepSchema }
func (s *DialogStep) ListID() string                     { return s.ID }
func (s *DialogStep) ListDisplayValue() compare.Value {
	return compare.Value{Value: shorten(s.Text, 40), Resolve: compare.ResolveNone}
}

// DialogOption is an answer the player can choose in a step.
type DialogOption struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	NextStepID string `json:"nextStepId"`
}

var dialogOptionSchema = compare.NewSchema[*DialogOption]("dialog_option").
	Value("Text", func(o *DialogOption) any { return o.Text }).
	Value("NextStepId", func(o *DialogOption) any { return o.NextStepID })

func (o *DialogOption) CompareSchema() compare.Classifier { return dialogOptionSchema }
func (o *DialogOption) ListID() string                     { return o.ID }
func (o *DialogOption) ListDisplayValue() compare.Value {
	return compare.Value{Value: shorten(o.Text, 40), Resolve: compare.ResolveNone}
}

// shorten truncates s to at most n runes, appending an ellipsis when cut.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
