package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SplitCommandLine(t *testing.T) {
	testCases := []struct {
		name          string
		line          string
		expectUser    string
		expectCommand string
		expectOK      bool
	}{
		{
			name:          "normal",
			line:          "simon: look",
			expectUser:    "simon",
			expectCommand: "look",
			expectOK:      true,
		},
		{
			name:          "separator in command",
			line:          "simon: say: hi",
			expectUser:    "simon",
			expectCommand: "say: hi",
			expectOK:      true,
		},
		{
			name:     "no separator",
			line:     "simon look",
			expectOK: false,
		},
		{
			name:     "colon without space",
			line:     "simon:look",
			expectOK: false,
		},
		{
			name:     "empty username",
			line:     ": look",
			expectOK: false,
		},
		{
			name:       "empty command",
			line:       "simon: ",
			expectUser: "simon",
			expectOK:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			user, cmd, ok := SplitCommandLine(tc.line)

			assert.Equal(tc.expectOK, ok)
			assert.Equal(tc.expectUser, user)
			assert.Equal(tc.expectCommand, cmd)
		})
	}
}

func Test_IsBasic(t *testing.T) {
	testCases := []struct {
		text   string
		expect bool
	}{
		{text: "look", expect: true},
		{text: "inv", expect: true},
		{text: "goto forest", expect: true},
		{text: "chop tree", expect: false},
		{text: "forget it", expect: true},
		{text: "invoke the spirits", expect: true},
		{text: "overlook", expect: true},
		{text: "", expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsBasic(tc.text))
		})
	}
}

func Test_FirstContained(t *testing.T) {
	testCases := []struct {
		name       string
		text       string
		names      []string
		expect     string
		expectOK   bool
	}{
		{
			name:     "exact word",
			text:     "get axe",
			names:    []string{"potion", "axe"},
			expect:   "axe",
			expectOK: true,
		},
		{
			name:     "first in list order wins",
			text:     "get axe potion",
			names:    []string{"potion", "axe"},
			expect:   "potion",
			expectOK: true,
		},
		{
			name:     "substring of another word",
			text:     "get pickaxe",
			names:    []string{"axe"},
			expect:   "axe",
			expectOK: true,
		},
		{
			name:  "nothing contained",
			text:  "get key",
			names: []string{"potion", "axe"},
		},
		{
			name:  "empty names are skipped",
			text:  "get key",
			names: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, ok := FirstContained(tc.text, tc.names)

			assert.Equal(tc.expectOK, ok)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_validBasicSyntax(t *testing.T) {
	testCases := []struct {
		text   string
		expect bool
	}{
		{text: "look", expect: true},
		{text: "look around", expect: false},
		{text: "health", expect: true},
		{text: "inventory", expect: true},
		{text: "inv all", expect: false},
		{text: "get axe", expect: true},
		{text: "take axe", expect: true},
		{text: "get", expect: false},
		{text: "drop the axe", expect: false},
		{text: "goto forest", expect: true},
		{text: "go to forest", expect: false},
		{text: "", expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expect, validBasicSyntax(tc.text))
		})
	}
}

func Test_validActionSyntax(t *testing.T) {
	chop := Action{Trigger: "chop", Subjects: []string{"tree", "axe"}, Consumed: []string{"tree"}}
	blow := Action{Trigger: "blow", Subjects: []string{"horn"}}

	testCases := []struct {
		name   string
		action Action
		text   string
		expect bool
	}{
		{name: "one subject", action: chop, text: "chop tree", expect: true},
		{name: "two subjects one consumed", action: chop, text: "chop tree with axe", expect: true},
		{name: "reversed order", action: chop, text: "chop axe with tree", expect: true},
		{name: "filler words ignored", action: chop, text: "please chop the tree using the axe", expect: true},
		{name: "no arguments", action: chop, text: "chop", expect: false},
		{name: "three arguments", action: chop, text: "chop tree axe horn", expect: false},
		{name: "unknown argument", action: chop, text: "chop log", expect: false},
		{name: "two subjects none consumed", action: Action{Subjects: []string{"a1", "b1"}}, text: "x a1 b1", expect: false},
		{name: "single subject action", action: blow, text: "blow the horn", expect: true},
		{name: "leading filler dropped before trigger", action: blow, text: "please blow horn", expect: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, validActionSyntax(tc.action, tc.text))
		})
	}
}
