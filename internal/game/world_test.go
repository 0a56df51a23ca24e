package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_World_AddLocation_Duplicate(t *testing.T) {
	assert := assert.New(t)

	_, err := NewWorld(NewLocation("cabin", "a"), NewLocation("cabin", "b"))

	assert.Error(err)
}

func Test_World_AddPath(t *testing.T) {
	testCases := []struct {
		name       string
		paths      [][2]string
		expectErr  bool
		expectTo   []string
		expectFrom []string
	}{
		{
			name:       "single path",
			paths:      [][2]string{{"cabin", "forest"}},
			expectTo:   []string{"forest"},
			expectFrom: nil,
		},
		{
			name:       "duplicate is a no-op",
			paths:      [][2]string{{"cabin", "forest"}, {"cabin", "forest"}},
			expectTo:   []string{"forest"},
			expectFrom: nil,
		},
		{
			name:       "paths are directed",
			paths:      [][2]string{{"forest", "cabin"}},
			expectTo:   nil,
			expectFrom: []string{"forest"},
		},
		{
			name:      "unknown destination",
			paths:     [][2]string{{"cabin", "narnia"}},
			expectErr: true,
		},
		{
			name:      "unknown source",
			paths:     [][2]string{{"narnia", "cabin"}},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			w, err := NewWorld(NewLocation("cabin", "A cabin"), NewLocation("forest", "A forest"))
			if !assert.NoError(err) {
				return
			}

			for _, p := range tc.paths {
				err = w.AddPath(p[0], p[1])
				if err != nil {
					break
				}
			}

			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expectTo, w.Location("cabin").To)
			assert.Equal(tc.expectFrom, w.Location("cabin").From)
		})
	}
}

func Test_World_Paths(t *testing.T) {
	assert := assert.New(t)

	w, _ := newTestWorld(true)

	assert.Equal([]string{"cabin", "riverbank"}, w.Paths("forest"))
	assert.Nil(w.Paths("narnia"))
}

func Test_World_FindAndRelocate(t *testing.T) {
	assert := assert.New(t)

	w, _ := newTestWorld(true)

	loc, k := w.Find("lumberjack", Artefact, Furniture, Character)
	if !assert.NotNil(loc) {
		return
	}
	assert.Equal("storeroom", loc.Name)
	assert.Equal(Character, k)

	moved := w.Relocate("lumberjack", k, loc, w.Location("forest"))
	assert.True(moved)
	assert.True(w.Location("forest").Characters.Has("lumberjack"))
	assert.False(loc.Characters.Has("lumberjack"))

	// kind must match
	assert.False(w.Relocate("tree", Artefact, w.Location("forest"), loc))
	assert.True(w.Location("forest").Furniture.Has("tree"))

	missing, _ := w.Find("dragon", Artefact, Furniture, Character)
	assert.Nil(missing)
}

func Test_World_Describe(t *testing.T) {
	assert := assert.New(t)

	w, _ := newTestWorld(true)

	expect := "Location: cellar (A dusty cellar)\n" +
		"  Characters you can see:\n" +
		"   * elf (Angry Elf)\n" +
		"  From here you can go to:\n" +
		"   * cabin (A log cabin in the woods)\n"

	assert.Equal(expect, w.Describe(w.Location("cellar")))

	// no groups at all
	bare := NewLocation("void", "Nothing here")
	assert.Equal("Location: void (Nothing here)\n", w.Describe(bare))
}

func Test_RuleTable(t *testing.T) {
	assert := assert.New(t)

	rt := NewRuleTable(
		Action{Trigger: "open", Narration: "1"},
		Action{Trigger: "chop", Narration: "2"},
		Action{Trigger: "open", Narration: "3"},
	)

	assert.Equal([]string{"open", "chop"}, rt.Triggers())
	assert.Equal(3, rt.Len())

	opens := rt.Lookup("open")
	if assert.Len(opens, 2) {
		assert.Equal("1", opens[0].Narration)
		assert.Equal("3", opens[1].Narration)
	}
	assert.Empty(rt.Lookup("dance"))
}
