package stagerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Narration(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect string
	}{
		{
			name:   "command error",
			err:    Commandf("Can't find the %s, please try again", "artefact"),
			expect: "[Error]: Can't find the artefact, please try again\n",
		},
		{
			name:   "command error with description",
			err:    Command("Invalid action, please try again", "no trigger in text"),
			expect: "[Error]: Invalid action, please try again\n",
		},
		{
			name:   "plain error",
			err:    errors.New("disk on fire"),
			expect: "[Error]: disk on fire\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Narration(tc.err)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Command_Error(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("no trigger in text", Command("Invalid action, please try again", "no trigger in text").Error())
	assert.Equal(`got CommandError("msg")`, Commandf("msg").Error())
}
