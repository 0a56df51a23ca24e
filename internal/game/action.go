package game

// File action.go holds symbols for the rules that drive extended commands.

// Action is a rule that fires when a player gives its trigger phrase with all
// of its subjects at hand.
type Action struct {
	// Trigger is the phrase that activates the action.
	Trigger string

	// Subjects are the entities that must all be visible to the player for
	// the action to fire.
	Subjects []string

	// Consumed are the entities removed from play when the action fires. The
	// special name "health" costs the player one point of health.
	Consumed []string

	// Produced are the entities brought to the player's location when the
	// action fires. A location name opens a path to that location and the
	// special name "health" restores one point of health.
	Produced []string

	// Narration is shown to the player when the action fires.
	Narration string
}

func (a Action) isSubject(name string) bool {
	return contains(a.Subjects, name)
}

func (a Action) isConsumed(name string) bool {
	return contains(a.Consumed, name)
}

func contains(sl []string, s string) bool {
	for i := range sl {
		if sl[i] == s {
			return true
		}
	}
	return false
}

// RuleTable maps each trigger phrase to the actions that share it. It is
// built once and never modified afterwards.
type RuleTable struct {
	triggers []string
	actions  map[string][]Action
}

// NewRuleTable creates a RuleTable from the given actions. Triggers are
// matched in the order they first appear, and actions sharing a trigger are
// tried in the order given.
func NewRuleTable(actions ...Action) *RuleTable {
	rt := &RuleTable{actions: map[string][]Action{}}
	for _, a := range actions {
		if _, ok := rt.actions[a.Trigger]; !ok {
			rt.triggers = append(rt.triggers, a.Trigger)
		}
		rt.actions[a.Trigger] = append(rt.actions[a.Trigger], a)
	}
	return rt
}

// Lookup returns the actions that share the given trigger phrase.
func (rt *RuleTable) Lookup(phrase string) []Action {
	found := rt.actions[phrase]
	acts := make([]Action, len(found))
	copy(acts, found)
	return acts
}

// Triggers returns every trigger phrase in matching order.
func (rt *RuleTable) Triggers() []string {
	trigs := make([]string, len(rt.triggers))
	copy(trigs, rt.triggers)
	return trigs
}

// Len returns the number of actions in the table.
func (rt *RuleTable) Len() int {
	count := 0
	for _, acts := range rt.actions {
		count += len(acts)
	}
	return count
}
