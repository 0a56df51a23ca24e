// Package stagerrors holds the error type used by the STAG command interpreter
// to carry a player-facing message alongside a technical description.
package stagerrors

import "fmt"

// NarrationPrefix starts every narration produced from an error.
const NarrationPrefix = "[Error]: "

// commandError is an error caused by attempting to resolve a player command.
// Either the command could not be understood or it asks for something that is
// impossible in the current world state.
//
// commandError includes the message to show the player as well as a more
// technical "error message" style description.
type commandError struct {
	msg   string
	human string
}

func (e *commandError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed to the player to
// describe the error.
func (e *commandError) GameMessage() string {
	return e.human
}

// Command returns a new error that has both the message to show the player
// and the technical description of the error.
func Command(game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got CommandError(%q)", game)
	}
	return &commandError{
		msg:   technical,
		human: game,
	}
}

// Commandf returns a new error that has a message to show to the player and
// an automatically generated Error() description.
func Commandf(gameFormat string, a ...interface{}) error {
	return Command(fmt.Sprintf(gameFormat, a...), "")
}

// GameMessage gets the message to display to the player for the given error.
// If err was created by this package its game message is returned, otherwise
// err.Error() is.
func GameMessage(err error) string {
	if cmdErr, ok := err.(*commandError); ok {
		return cmdErr.GameMessage()
	}
	return err.Error()
}

// Narration renders err the way it is sent back to a player: prefixed with
// NarrationPrefix and ending in a newline.
func Narration(err error) string {
	return NarrationPrefix + GameMessage(err) + "\n"
}
