package game

// File match.go holds the text matching rules used to classify commands and
// resolve the entities they name. Matching is substring containment against
// the whole command text, not token equality: a name that appears anywhere in
// the text, even inside another word, counts as named.

import (
	"strings"
)

// CommandSeparator splits the username from the command text in a command
// line.
const CommandSeparator = ": "

// BasicVerbs are the keywords of the built-in commands. A command containing
// any of them is handled as a basic command.
var BasicVerbs = []string{"inventory", "inv", "get", "take", "drop", "goto", "look", "health"}

// basicArity is the number of tokens each basic verb must be given with,
// counting the verb itself.
var basicArity = map[string]int{
	"inventory": 1,
	"inv":       1,
	"look":      1,
	"health":    1,
	"get":       2,
	"take":      2,
	"drop":      2,
	"goto":      2,
}

// FillerWords are ignored when checking the syntax of an extended command.
var FillerWords = []string{"with", "the", "using", "use", "of", "a", "at", "to", "this", "that", "my", "please"}

// SplitCommandLine splits a line of the form "<username>: <command>" into its
// two parts. ok is false if the line has no separator or the username is
// empty.
func SplitCommandLine(line string) (username, command string, ok bool) {
	username, command, ok = strings.Cut(line, CommandSeparator)
	if !ok || username == "" {
		return "", "", false
	}
	return username, command, true
}

// Tokenize splits command text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// ContainsAny returns whether text contains any of words.
func ContainsAny(text string, words ...string) bool {
	_, ok := FirstContained(text, words)
	return ok
}

// FirstContained returns the first of names that text contains.
func FirstContained(text string, names []string) (string, bool) {
	for _, n := range names {
		if n != "" && strings.Contains(text, n) {
			return n, true
		}
	}
	return "", false
}

// IsBasic returns whether the command text is a basic command.
func IsBasic(text string) bool {
	return ContainsAny(text, BasicVerbs...)
}

// validBasicSyntax returns whether the first token of text is a basic verb
// given with the number of tokens that verb takes.
func validBasicSyntax(text string) bool {
	toks := Tokenize(text)
	if len(toks) < 1 {
		return false
	}
	arity, ok := basicArity[toks[0]]
	return ok && len(toks) == arity
}

// actionArgs returns the tokens of text that name the subjects of an
// extended command: filler words are dropped, then the first remaining token
// is taken to be the trigger and dropped as well.
func actionArgs(text string) []string {
	var args []string
	for _, tok := range Tokenize(text) {
		if contains(FillerWords, tok) {
			continue
		}
		args = append(args, tok)
	}
	if len(args) > 0 {
		args = args[1:]
	}
	return args
}

// validActionSyntax returns whether the arguments given in text fit the
// action. A single argument must be one of its subjects. Two arguments must
// both be subjects and at least one of them must be consumed.
func validActionSyntax(a Action, text string) bool {
	args := actionArgs(text)
	switch len(args) {
	case 1:
		return a.isSubject(args[0])
	case 2:
		if !a.isSubject(args[0]) || !a.isSubject(args[1]) {
			return false
		}
		return a.isConsumed(args[0]) || a.isConsumed(args[1])
	default:
		return false
	}
}
