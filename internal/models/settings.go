package models

import "fmt"

// GameSettings is the per-session configuration. A playable session needs
// QuestionsPerGame > 0 and at least one enabled category.
type GameSettings struct {
	QuestionsPerGame int        `json:"questionsPerGame"`
	TimePerQuestion  int        `json:"timePerQuestion"` // seconds
	Difficulty       Difficulty `json:"difficulty"`
	Categories       []string   `json:"categories"`
}

// HasCategory reports whether the category is in the enabled set.
func (s GameSettings) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Update shallow-merges a partial settings payload into s. Keys that are
// absent or nil keep their old values; present keys must have the right type.
func (s *GameSettings) Update(patch map[string]interface{}) error {
	assignInt := func(field *int, key string, minVal int) error {
		val, exists := patch[key]
		if !exists || val == nil {
			return nil
		}
		switch v := val.(type) {
		case float64: // JSON numbers decode as float64
			*field = int(v)
		case int:
			*field = v
		default:
			return fmt.Errorf("invalid type for %s", key)
		}
		if *field < minVal {
			return fmt.Errorf("%s must be at least %d", key, minVal)
		}
		return nil
	}

	if err := assignInt(&s.QuestionsPerGame, "questionsPerGame", 1); err != nil {
		return err
	}
	if err := assignInt(&s.TimePerQuestion, "timePerQuestion", 1); err != nil {
		return err
	}

	if val, exists := patch["difficulty"]; exists && val != nil {
		d, ok := val.(string)
		if !ok {
			return fmt.Errorf("invalid type for difficulty")
		}
		switch Difficulty(d) {
		case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
			s.Difficulty = Difficulty(d)
		default:
			return fmt.Errorf("unknown difficulty %q", d)
		}
	}

	if val, exists := patch["categories"]; exists && val != nil {
		raw, ok := val.([]interface{})
		if !ok {
			return fmt.Errorf("invalid type for categories")
		}
		categories := make([]string, 0, len(raw))
		for _, item := range raw {
			c, ok := item.(string)
			if !ok {
				return fmt.Errorf("invalid type for categories")
			}
			categories = append(categories, c)
		}
		s.Categories = categories
	}

	return nil
}
