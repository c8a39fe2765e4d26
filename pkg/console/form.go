package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// SelectOption is a single choice presented by a select field.
type SelectOption struct {
	Label string
	Value string
}

// FormField describes one field of an interactive form. Type is one of
// "input", "select" or "confirm". Value must point at a string (input,
// select) or bool (confirm); its existing contents seed the default.
type FormField struct {
	Type        string
	Title       string
	Description string
	Placeholder string
	Value       any
	Options     []SelectOption
	Validate    func(string) error
}

// RunForm runs an interactive form composed of the given fields. The bound
// Value pointers are updated in place. Returns ErrUserAborted semantics from
// huh when the user cancels with ctrl-c.
func RunForm(fields []FormField) error {
	if len(fields) == 0 {
		return fmt.Errorf("no form fields provided")
	}

	huhFields := make([]huh.Field, 0, len(fields))
	for _, field := range fields {
		built, err := buildField(field)
		if err != nil {
			return err
		}
		huhFields = append(huhFields, built)
	}

	if !isTTY() {
		return fmt.Errorf("cannot prompt: stdin is not a TTY")
	}

	form := huh.NewForm(huh.NewGroup(huhFields...)).
		WithAccessible(IsAccessibleMode())
	return form.Run()
}

func buildField(field FormField) (huh.Field, error) {
	switch field.Type {
	case "input":
		value, ok := field.Value.(*string)
		if !ok {
			return nil, fmt.Errorf("input field %q requires a *string value", field.Title)
		}
		input := huh.NewInput().
			Title(field.Title).
			Description(field.Description).
			Placeholder(field.Placeholder).
			Value(value)
		if field.Validate != nil {
			input = input.Validate(field.Validate)
		}
		return input, nil

	case "select":
		value, ok := field.Value.(*string)
		if !ok {
			return nil, fmt.Errorf("select field %q requires a *string value", field.Title)
		}
		if len(field.Options) == 0 {
			return nil, fmt.Errorf("select field %q requires options", field.Title)
		}
		options := make([]huh.Option[string], 0, len(field.Options))
		for _, opt := range field.Options {
			options = append(options, huh.NewOption(opt.Label, opt.Value))
		}
		return huh.NewSelect[string]().
			Title(field.Title).
			Description(field.Description).
			Options(options...).
			Value(value), nil

	case "confirm":
		value, ok := field.Value.(*bool)
		if !ok {
			return nil, fmt.Errorf("confirm field %q requires a *bool value", field.Title)
		}
		return huh.NewConfirm().
			Title(field.Title).
			Description(field.Description).
			Value(value), nil

	default:
		return nil, fmt.Errorf("unknown field type: %s", field.Type)
	}
}

// IsUserAborted reports whether an error came from the user cancelling an
// interactive prompt.
func IsUserAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

// IsAccessibleMode reports whether accessible prompt rendering is requested
// via the ACCESSIBLE environment variable (honored by huh).
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
