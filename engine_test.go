package stag

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingResolver struct {
	lines []string
	fail  bool
}

func (rr *recordingResolver) Resolve(ctx context.Context, line string) (string, error) {
	if rr.fail {
		return "", errors.New("server gone")
	}
	rr.lines = append(rr.lines, line)
	return "ok: " + line + "\n", nil
}

func Test_Engine_RunUntilQuit(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectLines []string
	}{
		{
			name:        "quit stops the shell",
			input:       "inv\nquit\nlook\n",
			expectLines: []string{"simon: look", "simon: inv"},
		},
		{
			name:        "bye stops the shell",
			input:       "BYE\n",
			expectLines: []string{"simon: look"},
		},
		{
			name:        "end of input stops the shell",
			input:       "get axe\n\ngoto forest",
			expectLines: []string{"simon: look", "simon: get axe", "simon: goto forest"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			res := &recordingResolver{}
			var out bytes.Buffer

			eng, err := NewWithResolver(strings.NewReader(tc.input), &out, res, Config{Username: "simon"})
			if !assert.NoError(err) {
				return
			}

			err = eng.RunUntilQuit(context.Background())

			assert.NoError(err)
			assert.Equal(tc.expectLines, res.lines)
			assert.True(strings.HasPrefix(out.String(), "Welcome to STAG\n"))
			assert.True(strings.HasSuffix(out.String(), "Goodbye\n"))
			assert.NoError(eng.Close())
		})
	}
}

func Test_Engine_ResolverError(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	eng, err := NewWithResolver(strings.NewReader("look\n"), &out, &recordingResolver{fail: true}, Config{Username: "simon"})
	if !assert.NoError(err) {
		return
	}

	err = eng.RunUntilQuit(context.Background())

	assert.Error(err)
}

func Test_Engine_LocalGame(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	cfg := Config{
		WorldFile:   filepath.Join("worlds", "extended.stag"),
		Username:    "Simon",
		ForceDirect: true,
	}

	eng, err := New(strings.NewReader("get axe\ninv\nquit\n"), &out, cfg)
	if !assert.NoError(err) {
		return
	}

	err = eng.RunUntilQuit(context.Background())

	assert.NoError(err)
	output := out.String()
	assert.Contains(output, "Location: cabin (A log cabin in the woods)\n")
	assert.Contains(output, "axe is added to the inventory\n")
	assert.Contains(output, " * axe (A razor sharp axe)\n")
}

func Test_New_BadConfig(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "blank username", cfg: Config{WorldFile: filepath.Join("worlds", "extended.stag"), Username: "  "}},
		{name: "separator in username", cfg: Config{WorldFile: filepath.Join("worlds", "extended.stag"), Username: "a: b"}},
		{name: "missing world", cfg: Config{WorldFile: "nope.stag", Username: "simon"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(strings.NewReader(""), &bytes.Buffer{}, tc.cfg)
			assert.Error(t, err)
		})
	}
}

func Test_Engine_wrap(t *testing.T) {
	assert := assert.New(t)

	eng := &Engine{width: 80}

	assert.Equal("You have 3 health points\n", eng.wrap("You have 3 health points"))
	assert.Equal("Location: cabin (A cabin)\n   * axe (An axe)\n", eng.wrap("Location: cabin (A cabin)\n   * axe (An axe)\n"))

	long := strings.Repeat("word ", 30)
	for _, line := range strings.Split(strings.TrimSuffix(eng.wrap(long), "\n"), "\n") {
		assert.LessOrEqual(len(line), 80)
	}
}
