// Package input contains identifiers used in getting STAG command lines from
// a console or other sources of input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader reads one command line at a time.
type Reader interface {
	// ReadCommand reads the next non-blank line with surrounding whitespace
	// removed. At end of input it returns io.EOF.
	ReadCommand() (string, error)

	// SetPrompt sets the text shown before input is read, if the reader
	// shows one.
	SetPrompt(p string)

	// Close releases any resources held by the reader.
	Close() error
}

// DirectReader implements Reader and reads commands from any generic input
// stream directly. It can be used with any io.Reader but does not sanitize the
// input of control and escape sequences.
//
// DirectReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r      *bufio.Reader
	prompt string
	echo   io.Writer
}

// InteractiveReader implements Reader and reads commands from stdin using a go
// implementation of the GNU Readline library. This keeps input clear of all
// typing and editing escape sequences and enables the use of command history.
// It should in general only be used when directly connected to a TTY.
//
// InteractiveReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl *readline.Instance
}

// NewDirectReader creates a DirectReader with a buffered reader on r. If
// prompt is not nil, the prompt set with SetPrompt is written to it before
// each line is read.
func NewDirectReader(r io.Reader, prompt io.Writer) *DirectReader {
	return &DirectReader{
		r:    bufio.NewReader(r),
		echo: prompt,
	}
}

// NewInteractiveReader creates an InteractiveReader and initializes readline.
// The returned InteractiveReader must have Close() called on it before
// disposal to properly tear down readline resources.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

// Close does nothing; it exists so DirectReader implements Reader.
func (dr *DirectReader) Close() error {
	return nil
}

// Close cleans up readline resources.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadCommand reads the next line from the stream. It blocks until a line
// containing non-space characters is read.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dr *DirectReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		if dr.echo != nil && dr.prompt != "" {
			if _, err := io.WriteString(dr.echo, dr.prompt); err != nil {
				return "", fmt.Errorf("write prompt: %w", err)
			}
		}

		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}

// ReadCommand reads the next command from stdin. It blocks until a line
// consisting of more than whitespace is read.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. Interrupting with Ctrl-C is also treated as end of input.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
	}

	return line, nil
}

// SetPrompt updates the prompt to the given text.
func (dr *DirectReader) SetPrompt(p string) {
	dr.prompt = p
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
}
