package models

import "impl-tracker/core/compare"

// Quest is a quest definition.
type Quest struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	IsMainQuest  bool              `json:"isMainQuest"`
	RewardItemID *string           `json:"rewardItemId,omitempty"`
	Objectives   []*QuestObjective `json:"objectives"`
}

var questSchema = compare.NewSchema[*Quest]("quest").
	Value("Name", func(q *Quest) any { return q.Name }).
	Value("Description", func(q *Quest) any { return q.Description }, compare.Text("CompareDifferenceLongTextChanged")).
	Value("IsMainQuest", func(q *Quest) any { return q.IsMainQuest }).
	Value("RewardItemId", func(q *Quest) any { return q.RewardItemID }, compare.Resolve(compare.ResolveItemName)).
	List("Objectives", func(q *Quest) []compare.ListComparable { return compare.Items(q.Objectives) }, compare.Label("CompareLabelObjectives"))

// CompareSchema implements compare.Comparable.
func (q *Quest) CompareSchema() compare.Classifier { return questSchema }

// QuestObjective is a single goal of a quest.
type QuestObjective struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	RequiredItemID *string `json:"requiredItemId,omitempty"`
	Quantity       int     `json:"quantity"`
}

var questObjectiveSchema = compare.NewSchema[*QuestObjective]("quest_objective").
	Value("Description", func(o *QuestObjective) any { return o.Description }).
	Value("RequiredItemId", func(o *QuestObjective) any { return o.RequiredItemID }, compare.Resolve(compare.ResolveItemName)).
	Value("Quantity", func(o *QuestObjective) any { return o.Quantity })

func (o *QuestObjective) CompareSchema() compare.Classifier { return questObjectiveSchema }
func (o *QuestObjective) ListID() string                     { return o.ID }
func (o *QuestObjective) ListDisplayValue() compare.Value {
	return compare.Value{Value: shorten(o.Description, 40), Resolve: compare.ResolveNone}
}
