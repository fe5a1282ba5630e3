package models

import "impl-tracker/core/compare"

// Skill is a skill definition.
type Skill struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Element     string         `json:"element"` // language key, e.g. SkillElementFire
	ManaCost    int            `json:"manaCost"`
	Effects     []*SkillEffect `json:"effects"`
}

var skillSchema = compare.NewSchema[*Skill]("skill").
	Value("Name", func(s *Skill) any { return s.Name }).
	Value("Description", func(s *Skill) any { return s.Description }, compare.Text("CompareDifferenceLongTextChanged")).
	Value("Element", func(s *Skill) any { return s.Element }, compare.Resolve(compare.ResolveLanguageKey)).
	Value("ManaCost", func(s *Skill) any { return s.ManaCost }).
	List("Effects", func(s *Skill) []compare.ListComparable { return compare.Items(s.Effects) })

// CompareSchema implements compare.Comparable.
func (s *Skill) CompareSchema() compare.Classifier { return skillSchema }

// SkillEffect is one effect applied by a skill.
type SkillEffect struct {
	ID         string `json:"id"`
	EffectType string `json:"effectType"` // language key, e.g. SkillEffectDamage
	Amount     int    `json:"amount"`
	Duration   *int   `json:"duration,omitempty"`
}

var skillEffectSchema = compare.NewSchema[*SkillEffect]("skill_effect").
	Value("EffectType", func(e *SkillEffect) any { return e.EffectType }, compare.Resolve(compare.ResolveLanguageKey)).
	Value("Amount", func(e *SkillEffect) any { return e.Amount }).
	Value("Duration", func(e *SkillEffect) any { return e.Duration })

func (e *SkillEffect) CompareSchema() compare.Classifier { return skillEffectSchema }
func (e *SkillEffect) ListID() string                     { return e.ID }
func (e *SkillEffect) ListDisplayValue() compare.Value {
	return compare.Value{Value: e.EffectType, Resolve: compare.ResolveLanguageKey}
}
