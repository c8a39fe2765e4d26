package console

// PromptInput asks for a single line of free text. The initial value seeds
// the field and is returned unchanged when the user accepts it as-is.
func PromptInput(title, description, initial string) (string, error) {
	value := initial
	err := RunForm([]FormField{
		{
			Type:        "input",
			Title:       title,
			Description: description,
			Value:       &value,
		},
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// PromptInputWithValidation asks for a single line of free text, re-prompting
// until the validator accepts the response.
func PromptInputWithValidation(title, description, initial string, validate func(string) error) (string, error) {
	value := initial
	err := RunForm([]FormField{
		{
			Type:        "input",
			Title:       title,
			Description: description,
			Value:       &value,
			Validate:    validate,
		},
	})
	if err != nil {
		return "", err
	}
	return value, nil
}
