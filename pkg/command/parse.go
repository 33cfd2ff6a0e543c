package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput marks a blank command line. The host prints nothing for it.
var ErrEmptyInput = errors.New("")

// orderWords are the actions an NPC can be commanded to take.
var orderWords = []string{"pickup", "attack", "goto", "stop", "killyourself"}

// Parse turns one line of input into a command. Input is lowercased, so
// every name argument reaching a handler is lowercase and handlers must
// match case-insensitively.
func Parse(input string) (Command, error) {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	verb, args := words[0], words[1:]

	switch verb {
	case "amuse":
		return onePerson(args, "AMUSE", func(s string) Command { return &Amuse{Person: s} })
	case "apply":
		return parseApply(args)
	case "approach":
		return onePerson(args, "APPROACH", func(s string) Command { return &Approach{Person: s} })
	case "attack":
		return onePerson(args, "ATTACK", func(s string) Command { return &Attack{Person: s} })
	case "capture":
		return onePerson(args, "CAPTURE", func(s string) Command { return &Capture{Person: s} })
	case "cheerup":
		return onePerson(args, "CHEERUP", func(s string) Command { return &CheerUp{Person: s} })
	case "chokeout":
		return onePerson(args, "CHOKEOUT", func(s string) Command { return &ChokeOut{Person: s} })
	case "command":
		return parseOrder(args)
	case "compliment":
		return onePerson(args, "COMPLIMENT", func(s string) Command { return &Compliment{Person: s} })
	case "consume":
		return oneItem(args, "CONSUME", func(s string) Command { return &Consume{Item: s} })
	case "describe":
		return parseDescribe(args)
	case "diagnose":
		return &Diagnose{}, nil
	case "disguise":
		return onePerson(args, "DISGUISE", func(s string) Command { return &Disguise{Person: s} })
	case "dishearten":
		return onePerson(args, "DISHEARTEN", func(s string) Command { return &Dishearten{Person: s} })
	case "drop":
		return oneItem(args, "DROP", func(s string) Command { return &Drop{Item: s} })
	case "escape":
		return oneItem(args, "ESCAPE", func(s string) Command { return &Escape{Item: s} })
	case "equip":
		return oneItem(args, "EQUIP", func(s string) Command { return &Equip{Item: s} })
	case "followme":
		return onePerson(args, "FOLLOWME", func(s string) Command { return &FollowMe{Person: s} })
	case "give":
		return parseGive(args)
	case "goto":
		return parseGoto(args)
	case "forcegoto":
		return oneRoom(args, "GOTOFORCE", func(s string) Command { return &ForceGoto{Room: s} })
	case "help":
		return parseHelp(args)
	case "inquire":
		return parseInquire(args)
	case "inspect":
		return oneItem(args, "INSPECT", func(s string) Command { return &Inspect{Item: s} })
	case "intimidate":
		return onePerson(args, "INTIMIDATE", func(s string) Command { return &Intimidate{Person: s} })
	case "leaveme":
		if len(args) != 0 {
			return nil, errors.New("LEAVEME does not take any arguments")
		}
		return &LeaveMe{}, nil
	case "peek":
		return oneRoom(args, "PEEK", func(s string) Command { return &Peek{Room: s} })
	case "pickup":
		return oneItem(args, "PICKUP", func(s string) Command { return &Pickup{Item: s} })
	case "place":
		return parsePlace(args)
	case "punch":
		return onePerson(args, "PUNCH", func(s string) Command { return &Punch{Person: s} })
	case "quit":
		return &Quit{}, nil
	case "romance":
		return onePerson(args, "ROMANCE", func(s string) Command { return &Romance{Person: s} })
	case "save":
		return &Save{}, nil
	case "scout":
		return oneRoom(args, "SCOUT", func(s string) Command { return &Scout{Room: s} })
	case "search":
		return parseSearch(args)
	case "seduce":
		return onePerson(args, "SEDUCE", func(s string) Command { return &Seduce{Person: s} })
	case "survey":
		if len(args) != 0 {
			return nil, errors.New("SURVEY does not take any arguments")
		}
		return &Survey{}, nil
	case "takefrom":
		return parseTakeFrom(args)
	case "talk":
		return onePerson(args, "TALK", func(s string) Command { return &Talk{Person: s} })
	case "teleport":
		if len(args) != 1 {
			return nil, errors.New("Teleport expects a room argument")
		}
		return &Teleport{Room: args[0]}, nil
	case "unequip":
		if len(args) != 0 {
			return nil, errors.New("UNEQUIP does not take any arguments")
		}
		return &Unequip{}, nil
	case "unlock":
		return oneRoom(args, "UNLOCK", func(s string) Command { return &Unlock{Room: s} })
	case "view":
		return parseView(args)
	case "wait":
		return &WaitCmd{}, nil
	default:
		return nil, unknownVerb(verb)
	}
}

// oneThing builds a command from exactly one argument, with the standard
// missing/extra argument failures.
func oneThing(thing string) func(args []string, cmd string, build func(string) Command) (Command, error) {
	return func(args []string, cmd string, build func(string) Command) (Command, error) {
		switch len(args) {
		case 1:
			return build(args[0]), nil
		case 0:
			return nil, fmt.Errorf("Missing %s argument for %s", thing, cmd)
		default:
			return nil, errors.New(cmd + " expects one argument")
		}
	}
}

var (
	onePersonArg = oneThing("person")
	oneItemArg   = oneThing("item")
	oneRoomArg   = oneThing("room")
)

func onePerson(args []string, cmd string, build func(string) Command) (Command, error) {
	return onePersonArg(args, cmd, build)
}

func oneItem(args []string, cmd string, build func(string) Command) (Command, error) {
	return oneItemArg(args, cmd, build)
}

func oneRoom(args []string, cmd string, build func(string) Command) (Command, error) {
	return oneRoomArg(args, cmd, build)
}

func parseApply(args []string) (Command, error) {
	switch {
	case len(args) == 3 && args[1] == "to":
		return &Apply{Poison: args[0], Target: args[2]}, nil
	case len(args) == 2 && args[1] == "to":
		return nil, errors.New("Missing target argument for APPLY")
	case len(args) == 0:
		return nil, errors.New("Missing poison and target argument for APPLY")
	default:
		return nil, errors.New("APPLY expects two arguments. Usage: apply <poison name> to <item name>")
	}
}

func parseOrder(args []string) (Command, error) {
	if len(args) == 1 {
		return nil, errors.New("Missing command argument for COMMAND")
	}
	if len(args) < 2 || len(args) > 3 {
		return nil, errors.New("COMMAND expects three arguments")
	}

	word := args[1]
	valid := false
	for _, w := range orderWords {
		if w == word {
			valid = true
		}
	}
	if !valid {
		return nil, errors.New("COMMAND expects three arguments")
	}

	if len(args) == 3 {
		switch word {
		case "attack":
			return &Order{Person: args[0], Kind: OrderAttack, Target: args[2]}, nil
		case "goto":
			return &Order{Person: args[0], Kind: OrderGoto, Target: args[2]}, nil
		case "pickup":
			return &Order{Person: args[0], Kind: OrderPickup, Target: args[2]}, nil
		}
		return nil, errors.New("COMMAND expects three arguments")
	}
	switch word {
	case "stop":
		return &Order{Person: args[0], Kind: OrderStop}, nil
	case "killyourself":
		return &Order{Person: args[0], Kind: OrderSuicide}, nil
	}
	return nil, errors.New("COMMAND expects three arguments")
}

func parseDescribe(args []string) (Command, error) {
	switch {
	case len(args) == 1 && args[0] == "area":
		return &Describe{Kind: DescribeArea}, nil
	case len(args) == 2 && args[0] == "item":
		return &Describe{Kind: DescribeItem, Name: args[1]}, nil
	case len(args) == 2 && args[0] == "person":
		return &Describe{Kind: DescribePerson, Name: args[1]}, nil
	default:
		return nil, errors.New("Invalid arguments for DESCRIBE")
	}
}

func parseGive(args []string) (Command, error) {
	switch {
	case len(args) == 3 && args[1] == "to":
		return &Give{Item: args[0], Person: args[2]}, nil
	case len(args) == 2 && args[1] == "to":
		return nil, errors.New("Missing the Person argument to GIVE")
	default:
		return nil, errors.New("GIVE expects an item and a person as arguments")
	}
}

func parseGoto(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return &Goto{}, nil
	case 1:
		return &Goto{Room: args[0]}, nil
	default:
		return nil, errors.New("GOTO expects one or zero arguments")
	}
}

func parseHelp(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return &Help{}, nil
	case 1:
		return &Help{Topic: args[0]}, nil
	default:
		return nil, errors.New("HELP expects one or zero arguments")
	}
}

func parseInquire(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return nil, errors.New("Missing question and person argument for INQUIRE")
	case 1:
		return nil, errors.New("Missing person argument for INQUIRE")
	case 2:
		return &Inquire{Question: args[0], Person: args[1]}, nil
	default:
		return nil, errors.New("INQUIRE expects two arguments")
	}
}

func parsePlace(args []string) (Command, error) {
	switch {
	case len(args) == 3 && args[1] == "in":
		return &Place{Item: args[0], Container: args[2]}, nil
	case len(args) >= 1 && args[0] == "in":
		return nil, errors.New("Missing item argument for PLACE")
	case len(args) == 3:
		return nil, errors.New("Missing target argument for PLACE")
	default:
		return nil, errors.New("Invalid arguments to PLACE")
	}
}

func parseSearch(args []string) (Command, error) {
	switch {
	case len(args) == 0 || (len(args) == 1 && args[0] == "area"):
		return &Search{}, nil
	case len(args) == 1:
		return &Search{Item: args[0]}, nil
	default:
		return nil, errors.New("Invalid argument(s) for SEARCH")
	}
}

func parseTakeFrom(args []string) (Command, error) {
	switch len(args) {
	case 2:
		return &TakeFrom{Target: args[0], Item: args[1]}, nil
	case 1:
		return nil, errors.New("Missing target argument for TAKEFROM")
	default:
		return nil, errors.New("TAKEFROM expects an item and person as arguments")
	}
}

func parseView(args []string) (Command, error) {
	switch {
	case len(args) == 2 && args[0] == "my" && args[1] == "stats":
		return &View{Kind: ViewPlayerStats}, nil
	case len(args) == 2 && args[0] == "my" && args[1] == "companion":
		return &View{Kind: ViewCompanion}, nil
	case len(args) == 2 && args[0] == "stats":
		return &View{Kind: ViewPersonStats, Person: args[1]}, nil
	case len(args) == 1 && (args[0] == "items" || args[0] == "inventory"):
		return &View{Kind: ViewInventory}, nil
	case len(args) == 1 && args[0] == "time":
		return &View{Kind: ViewTime}, nil
	case len(args) == 1 && args[0] == "objectives":
		return &View{Kind: ViewObjectives}, nil
	case len(args) == 1 && args[0] == "visitedrooms":
		return &View{Kind: ViewVisitedRooms}, nil
	case len(args) == 1 && args[0] == "stats":
		return nil, errors.New("Missing person argument to VIEW Stats")
	case len(args) == 1:
		return nil, fmt.Errorf("Invalid argument for VIEW: %s", args[0])
	default:
		return nil, errors.New("Invalid arguments for VIEW")
	}
}

// unknownVerb builds the did-you-mean failure for an unrecognized verb.
// Only near-misses (five shared leading letters) earn a suggestion.
func unknownVerb(verb string) error {
	text := suggestionText(verb, 5)
	if text == "" {
		return fmt.Errorf("%s is not a valid command", verb)
	}
	return fmt.Errorf("%s is not a valid command\n%s", verb, text)
}
