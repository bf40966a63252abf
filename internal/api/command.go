package api

import (
	"fmt"
	"strings"

	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/model"
)

// Validator is a validation function that checks the answer for the given type.
// On success it passes the parsed value to the reference it was created with.
type Validator func(string) error

// Answers is a set of accepted answers.
type Answers map[string]struct{}

// Contains creates the answer set for the given values.
func Contains(arg ...string) Answers {
	args := make(Answers)
	for _, a := range arg {
		args[normalize(a)] = struct{}{}
	}
	return args
}

func (a Answers) has(s string) bool {
	_, ok := a[normalize(s)]
	return ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// YesNo is a predefined Validator checking that the answer is one of the yes or no answers.
func YesNo(v *bool, yes, no Answers) Validator {
	return func(s string) error {
		switch {
		case yes.has(s):
			*v = true
		case no.has(s):
			*v = false
		default:
			return fmt.Errorf("'%s' is neither yes nor no: %w", strings.TrimSpace(s), model.InvalidArgumentErr)
		}
		return nil
	}
}

// NotEmpty is a predefined Validator that checks if the argument is empty.
func NotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty: %w", model.InvalidArgumentErr)
	}
	return nil
}

// Float is a predefined Validator checking that the argument is a float.
func Float(f *float64) Validator {
	return func(s string) error {
		if err := NotEmpty(s); err != nil {
			return err
		}
		number, err := math.ParseFloat(s)
		if err != nil {
			return fmt.Errorf("'%s' is not a number: %w", strings.TrimSpace(s), model.InvalidArgumentErr)
		}
		*f = number
		return nil
	}
}

// Int is a predefined Validator checking that the argument is an int.
func Int(d *int) Validator {
	return func(s string) error {
		if err := NotEmpty(s); err != nil {
			return err
		}
		number, err := math.ParseInt(s)
		if err != nil {
			return fmt.Errorf("'%s' is not an integer: %w", strings.TrimSpace(s), model.InvalidArgumentErr)
		}
		*d = number
		return nil
	}
}

// Positive is a predefined Validator checking that the argument is an int larger than zero.
func Positive(d *int) Validator {
	return func(s string) error {
		var i int
		if err := Int(&i)(s); err != nil {
			return err
		}
		if i < 1 {
			return fmt.Errorf("%d is not positive: %w", i, model.InvalidArgumentErr)
		}
		*d = i
		return nil
	}
}
