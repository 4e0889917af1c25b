// Package parser converts command strings into Intent structs.
// Intentionally dumb: one verb, one optional argument, no NLP.
package parser

import "strings"

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb string
	Arg  string
}

// Directions usable as bare commands ("north" → "go north").
var directionExpansions = map[string]string{
	"n":     "north",
	"north": "north",
	"e":     "east",
	"east":  "east",
	"s":     "south",
	"south": "south",
	"w":     "west",
	"west":  "west",
}

var verbAliases = map[string]string{
	// Look
	"l":       "look",
	"examine": "look",
	"x":       "look",

	// Movement
	"go":     "go",
	"walk":   "go",
	"move":   "go",
	"head":   "go",
	"travel": "go",

	// Scavenging
	"forage": "scavenge",
	"loot":   "scavenge",
	"search": "scavenge",

	// Eating
	"consume": "eat",
	"devour":  "eat",
	"taste":   "eat",

	// Rites
	"pray": "chant",
	"sing": "chant",

	// Answers
	"guess": "answer",
	"reply": "answer",

	// Inventory
	"i":         "inv",
	"inventory": "inv",
	"backpack":  "inv",

	// Resting
	"sleep": "rest",
	"nap":   "rest",
	"z":     "rest",

	// Meta
	"m":       "map",
	"status":  "stats",
	"score":   "stats",
	"restart": "new",
	"q":       "quit",
	"exit":    "quit",
}

// Parse converts a raw command string into an Intent. The verb is
// lowercased; the argument keeps its original spacing collapsed so
// multi-word riddle answers survive ("answer your left hand").
func Parse(input string) Intent {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Intent{}
	}

	verb := strings.ToLower(fields[0])

	// Bare direction is shorthand for "go <direction>".
	if len(fields) == 1 {
		if dir, ok := directionExpansions[verb]; ok {
			return Intent{Verb: "go", Arg: dir}
		}
	}

	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	arg := strings.Join(fields[1:], " ")
	if verb == "go" {
		if dir, ok := directionExpansions[strings.ToLower(arg)]; ok {
			arg = dir
		} else {
			arg = strings.ToLower(arg)
		}
	}
	return Intent{Verb: verb, Arg: arg}
}
