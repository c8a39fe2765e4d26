package console

import "fmt"

// PromptSelect presents a bounded menu of options and returns the value of
// the selected one. The defaultValue preselects a menu entry; the user can
// only ever return one of the enumerated option values.
func PromptSelect(title, description string, options []SelectOption, defaultValue string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided for %q", title)
	}

	selected := defaultValue
	err := RunForm([]FormField{
		{
			Type:        "select",
			Title:       title,
			Description: description,
			Value:       &selected,
			Options:     options,
		},
	})
	if err != nil {
		return "", err
	}
	return selected, nil
}
