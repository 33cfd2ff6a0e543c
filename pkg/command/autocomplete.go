package command

import (
	"fmt"
	"strings"

	"hitman/pkg/actor"
	"hitman/pkg/game"
	"hitman/pkg/item"
)

// Complete expands a partial input line to its most likely full form, for
// tab completion. It returns the completed line, or "" when there is nothing
// to offer. Candidates come from whatever the verb acts on: people in the
// room, inventory items, nearby doors.
func Complete(input string, env *game.Environment) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(words) == 0 {
		return ""
	}
	verb, args := words[0], words[1:]

	switch verb {
	case "amuse", "approach", "attack", "capture", "cheerup", "chokeout",
		"compliment", "disguise", "dishearten", "followme", "intimidate",
		"punch", "romance", "seduce", "talk":
		if len(args) == 1 {
			return verb + " " + matchRoomPeople(env, args[0])
		}

	case "apply":
		switch {
		case len(args) == 1:
			return "apply " + matchInventoryItem(env, args[0]) + " to "
		case len(args) == 3 && args[1] == "to":
			return fmt.Sprintf("apply %s to %s", args[0], matchInventoryItem(env, args[2]))
		default:
			return "apply "
		}

	case "command":
		switch {
		case len(args) == 2 && (args[1] == "stop" || args[1] == "killyourself"):
			return fmt.Sprintf("command %s %s", args[0], args[1])
		case len(args) == 3 && args[1] == "attack":
			return fmt.Sprintf("command %s attack %s", args[0], matchRoomPeople(env, args[2]))
		case len(args) == 3 && args[1] == "goto":
			return fmt.Sprintf("command %s goto %s", args[0], matchAdjacentRooms(env, args[2]))
		case len(args) == 3 && args[1] == "pickup":
			return fmt.Sprintf("command %s pickup %s", args[0], matchRoomItem(env, args[2]))
		case len(args) == 2:
			return fmt.Sprintf("command %s %s ", args[0], bestMatch(orderWords, args[1]))
		case len(args) == 1:
			return "command " + matchRoomPeople(env, args[0]) + " "
		default:
			return "command "
		}

	case "consume", "drop", "equip":
		if len(args) == 1 {
			return verb + " " + matchInventoryItem(env, args[0])
		}

	case "describe":
		switch {
		case len(args) == 2 && args[0] == "item":
			return "describe item " + matchAllItems(env, args[1])
		case len(args) == 2 && args[0] == "person":
			return "describe person " + matchRoomPeople(env, args[1])
		case len(args) == 1:
			return "describe " + bestMatch([]string{"area", "item", "person"}, args[0]) + " "
		default:
			return "describe "
		}

	case "diagnose", "survey":
		return verb

	case "escape", "pickup":
		if len(args) == 1 {
			return verb + " " + matchRoomItem(env, args[0])
		}

	case "give":
		switch {
		case len(args) == 1:
			return "give " + matchInventoryItem(env, args[0]) + " to "
		case len(args) == 3 && args[1] == "to":
			return fmt.Sprintf("give %s to %s", args[0], matchRoomPeople(env, args[2]))
		default:
			return "give "
		}

	case "goto", "forcegoto", "peek", "unlock":
		if len(args) == 1 {
			return verb + " " + matchAdjacentRooms(env, args[0])
		}

	case "help":
		if len(args) == 1 {
			matches := cmdSuggestions(args[0], 1)
			if len(matches) == 0 {
				return "help "
			}
			return "help " + matches[0]
		}

	case "inquire":
		switch {
		case len(args) == 2 && isInquireField(args[0]):
			return fmt.Sprintf("inquire %s %s", args[0], matchRoomPeople(env, args[1]))
		case len(args) >= 1:
			return "inquire " + bestMatch(actor.InquireFields, args[0]) + " "
		default:
			return "inquire "
		}

	case "inspect":
		if len(args) == 1 {
			return "inspect " + matchAllItems(env, args[0])
		}

	case "leaveme", "quit", "save", "unequip", "wait":
		return verb + " "

	case "place":
		switch {
		case len(args) == 1:
			return "place " + matchInventoryItem(env, args[0]) + " in "
		case len(args) == 3 && args[1] == "in":
			return fmt.Sprintf("place %s in %s", args[0], matchRoomItem(env, args[2]))
		default:
			return "place "
		}

	case "scout":
		if len(args) == 1 {
			return "scout " + matchOverlookRooms(env, args[0])
		}

	case "search":
		if len(args) == 1 {
			candidates := append([]string{"area"}, roomItemNames(env)...)
			return "search " + bestMatch(candidates, args[0])
		}

	case "takefrom":
		switch {
		case len(args) == 1:
			return "takefrom " + matchPeopleAndItems(env, args[0]) + " "
		case len(args) == 2:
			return fmt.Sprintf("takefrom %s %s", args[0], matchHolderItems(env, args[0], args[1]))
		default:
			return "takefrom "
		}

	case "view":
		switch {
		case len(args) == 2 && args[0] == "my":
			return "view my " + bestMatch([]string{"stats", "companion"}, args[1])
		case len(args) == 2 && args[0] == "stats":
			return "view stats " + matchRoomPeople(env, args[1])
		case len(args) == 1:
			return "view " + bestMatch([]string{"items", "time", "my", "stats", "objectives", "visitedrooms"}, args[0]) + " "
		default:
			return "view "
		}

	default:
		if len(args) == 0 {
			matches := cmdSuggestions(verb, 1)
			if len(matches) == 0 {
				return ""
			}
			return matches[0] + " "
		}
	}
	return ""
}

func isInquireField(word string) bool {
	for _, f := range actor.InquireFields {
		if f == word {
			return true
		}
	}
	return false
}

func roomPeopleNames(env *game.Environment) []string {
	names := make([]string, 0, len(env.Room.People))
	for _, p := range env.Room.People {
		names = append(names, strings.ToLower(p.Name))
	}
	return names
}

func roomItemNames(env *game.Environment) []string {
	names := make([]string, 0, len(env.Room.Items))
	for _, it := range env.Room.Items {
		names = append(names, strings.ToLower(it.ItemName()))
	}
	return names
}

func inventoryItemNames(env *game.Environment) []string {
	names := make([]string, 0, len(env.Player.Items))
	for _, it := range env.Player.Items {
		names = append(names, strings.ToLower(it.ItemName()))
	}
	return names
}

func matchRoomPeople(env *game.Environment, pattern string) string {
	return bestMatch(roomPeopleNames(env), pattern)
}

func matchRoomItem(env *game.Environment, pattern string) string {
	return bestMatch(roomItemNames(env), pattern)
}

func matchInventoryItem(env *game.Environment, pattern string) string {
	return bestMatch(inventoryItemNames(env), pattern)
}

func matchAllItems(env *game.Environment, pattern string) string {
	return bestMatch(append(roomItemNames(env), inventoryItemNames(env)...), pattern)
}

func matchPeopleAndItems(env *game.Environment, pattern string) string {
	return bestMatch(append(roomPeopleNames(env), roomItemNames(env)...), pattern)
}

func matchAdjacentRooms(env *game.Environment, pattern string) string {
	names := make([]string, 0, len(env.Map.AdjacentRooms))
	for _, adj := range env.Map.AdjacentRooms {
		names = append(names, strings.ToLower(adj.Name))
	}
	return bestMatch(names, pattern)
}

func matchOverlookRooms(env *game.Environment, pattern string) string {
	if len(env.Map.OverlookRooms) == 0 {
		return ""
	}
	names := make([]string, 0, len(env.Map.OverlookRooms))
	for _, name := range env.Map.OverlookRooms {
		names = append(names, strings.ToLower(name))
	}
	return bestMatch(names, pattern)
}

// matchHolderItems completes an item held by a person or stored in a
// container in the room.
func matchHolderItems(env *game.Environment, holder, pattern string) string {
	if p, ok := env.FindPerson(holder); ok {
		names := make([]string, 0, len(p.Items))
		for _, it := range p.Items {
			names = append(names, strings.ToLower(it.ItemName()))
		}
		return bestMatch(names, pattern)
	}
	if found, ok := env.FindItem(holder); ok {
		if c, ok := found.(*item.Container); ok {
			names := make([]string, 0, len(c.Items))
			for _, it := range c.Items {
				names = append(names, strings.ToLower(it.ItemName()))
			}
			return bestMatch(names, pattern)
		}
	}
	return ""
}
