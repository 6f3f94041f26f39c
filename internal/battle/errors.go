package battle

import (
	"errors"
	"fmt"
)

// ErrMatchOver is returned when stepping a match whose exit delay has run out.
var ErrMatchOver = errors.New("battle: match is over")

// BotError reports a bot that failed while deciding. It aborts the match.
type BotError struct {
	Side Side
	Name string
	Err  error
}

func (e *BotError) Error() string {
	return fmt.Sprintf("battle: %s bot %q failed: %v", e.Side, e.Name, e.Err)
}

func (e *BotError) Unwrap() error {
	return e.Err
}
