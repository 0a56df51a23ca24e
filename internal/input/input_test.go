package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DirectReader_ReadCommand(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []string
		expectErr error
	}{
		{
			name:      "single line",
			input:     "look\n",
			expect:    []string{"look"},
			expectErr: io.EOF,
		},
		{
			name:      "skips blank lines and trims",
			input:     "\n   \n  get axe \n\ngoto forest\n",
			expect:    []string{"get axe", "goto forest"},
			expectErr: io.EOF,
		},
		{
			name:      "last line without newline",
			input:     "look\ninv",
			expect:    []string{"look", "inv"},
			expectErr: io.EOF,
		},
		{
			name:      "empty input",
			input:     "",
			expect:    nil,
			expectErr: io.EOF,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			r := NewDirectReader(strings.NewReader(tc.input), nil)

			var actual []string
			var err error
			for {
				var line string
				line, err = r.ReadCommand()
				if err != nil {
					break
				}
				actual = append(actual, line)
			}

			assert.Equal(tc.expect, actual)
			assert.ErrorIs(err, tc.expectErr)
			assert.NoError(r.Close())
		})
	}
}

func Test_DirectReader_Prompt(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := NewDirectReader(strings.NewReader("\nlook\n"), &out)
	r.SetPrompt("> ")

	line, err := r.ReadCommand()

	assert.NoError(err)
	assert.Equal("look", line)
	assert.Equal("> > ", out.String())
}
