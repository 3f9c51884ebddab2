package form

// Dataset is the key/value view of an entity handed back to the caller
type Dataset map[string]any

// Put sets a key and returns the dataset for chaining
func (d Dataset) Put(key string, value any) Dataset {
	d[key] = value
	return d
}

// Choice is one option of a select input
type Choice struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// SelectChoices is the list of options for a select input. The first entry is
// always the empty choice, which is selected when nothing else is.
type SelectChoices struct {
	Choices []Choice `json:"choices"`
}

// EmptyChoiceKey is the key of the leading "nothing selected" option
const EmptyChoiceKey = "0"

const emptyChoiceLabel = "----"

// Selected returns the selected choice
func (s SelectChoices) Selected() Choice {
	for _, c := range s.Choices {
		if c.Selected {
			return c
		}
	}
	return Choice{Key: EmptyChoiceKey, Label: emptyChoiceLabel}
}

// FromEnum builds choices from the values of an enumeration
func FromEnum[T ~string](values []T, selected T) SelectChoices {
	return build(values, func(v T) string { return string(v) }, func(v T) string { return string(v) }, func(v T) bool { return v == selected })
}

// FromEntities builds choices from a slice of entities, keyed by key and labelled
// by label. isSelected marks the current reference, if any.
func FromEntities[T any](items []T, key, label func(T) string, isSelected func(T) bool) SelectChoices {
	return build(items, key, label, isSelected)
}

func build[T any](items []T, key, label func(T) string, isSelected func(T) bool) SelectChoices {
	choices := make([]Choice, 0, len(items)+1)
	choices = append(choices, Choice{Key: EmptyChoiceKey, Label: emptyChoiceLabel})

	found := false
	for _, item := range items {
		sel := !found && isSelected(item)
		if sel {
			found = true
		}
		choices = append(choices, Choice{Key: key(item), Label: label(item), Selected: sel})
	}
	if !found {
		choices[0].Selected = true
	}
	return SelectChoices{Choices: choices}
}
