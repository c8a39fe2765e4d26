package console

// ConfirmAction asks a yes/no question. The defaultValue is returned when
// the user accepts the preselected answer.
func ConfirmAction(title, description string, defaultValue bool) (bool, error) {
	confirmed := defaultValue
	err := RunForm([]FormField{
		{
			Type:        "confirm",
			Title:       title,
			Description: description,
			Value:       &confirmed,
		},
	})
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
