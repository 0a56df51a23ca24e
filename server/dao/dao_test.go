package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PlayerSnapshot_BinaryRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input PlayerSnapshot
	}{
		{
			name:  "new player",
			input: PlayerSnapshot{Name: "simon", Location: "cabin", Health: 3},
		},
		{
			name: "player with items and unlocks",
			input: PlayerSnapshot{
				Name:     "sion",
				Location: "cellar",
				Health:   1,
				Inventory: []Item{
					{Name: "axe", Description: "Razor sharp axe"},
					{Name: "coin", Description: "Silver coin"},
				},
				Unlocked: []string{"cellar"},
			},
		},
		{
			name: "empty unlocked list decodes as nil",
			input: PlayerSnapshot{
				Name:     "simon",
				Location: "forest",
				Health:   2,
				Unlocked: []string{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			data, err := tc.input.MarshalBinary()
			if !assert.NoError(err) {
				return
			}

			var actual PlayerSnapshot
			err = actual.UnmarshalBinary(data)
			if !assert.NoError(err) {
				return
			}

			expect := tc.input
			if len(expect.Unlocked) == 0 {
				expect.Unlocked = nil
			}
			assert.Equal(expect, actual)
		})
	}
}

func Test_PlayerSnapshot_UnmarshalBinary_Truncated(t *testing.T) {
	assert := assert.New(t)

	ps := PlayerSnapshot{Name: "simon", Location: "cabin", Health: 3, Unlocked: []string{"cellar"}}
	data, err := ps.MarshalBinary()
	if !assert.NoError(err) {
		return
	}

	var actual PlayerSnapshot
	err = actual.UnmarshalBinary(data[:len(data)/2])
	assert.Error(err)
}
