package local

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/drakos74/iris-knn/internal/api"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
)

// DefaultAttempts is the number of times a question is asked before giving up.
const DefaultAttempts = 3

// Console is a user answering questions on a line based terminal.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	attempts int
}

// NewConsole creates a console reading answers from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, attempts int) *Console {
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		attempts: attempts,
	}
}

// Say writes a line to the user.
func (c *Console) Say(format string, args ...interface{}) {
	_, err := fmt.Fprintf(c.out, format+"\n", args...)
	if err != nil {
		log.Error().Err(err).Msg("could not write to console")
	}
}

// Ask asks the question until the answer passes the validator.
// After an invalid answer the reminder is shown, formatted with the validation error if it takes one.
// It gives up with an invalid argument error once all attempts are used.
func (c *Console) Ask(ctx context.Context, question, reminder string, v api.Validator) error {
	var last error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := fmt.Fprint(c.out, question)
		if err != nil {
			return fmt.Errorf("could not ask '%s': %w", question, err)
		}
		answer, err := c.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
			return fmt.Errorf("no answer to '%s': %w", strings.TrimSpace(question), err)
		}
		last = v(answer)
		if last == nil {
			return nil
		}
		log.Debug().
			Err(last).
			Int("attempt", attempt).
			Str("answer", strings.TrimSpace(answer)).
			Msg("invalid answer")
		if strings.Contains(reminder, "%") {
			c.Say(reminder, last)
		} else {
			c.Say(reminder)
		}
	}
	return fmt.Errorf("no valid answer after %d attempts (%v): %w", c.attempts, last, model.InvalidArgumentErr)
}
