package command

import (
	"fmt"

	"hitman/pkg/ai"
	"hitman/pkg/game"
)

type helpEntry struct {
	verb string
	info string
}

var helpEntries = []helpEntry{
	{"amuse", "amuse <person> - tell a joke to lift a person's spirits, it may backfire"},
	{"apply", "apply <poisonName> to <itemName> - poison a weapon or consumable item"},
	{"approach", "approach <person> - get in close quarters to a person, giving them a chance to react. Required for melee attacks"},
	{"attack", "attack <person> - attack a person with the equipped weapon"},
	{"capture", "capture <person> - capture a terrified person to get an extra life. Only \"Fearful\" people can be made terrified."},
	{"cheerup", "cheerup <person> - increase a person's happiness"},
	{"chokeout", "chokeout <person> - render a person unconscious"},
	{"command", "command <person> <pickup/goto/attack/stop> <target> - command an ai to take an action"},
	{"compliment", "complement <person> - give a complement to increase happiness and attraction"},
	{"consume", "consume <item> - eat or drink an item to regain health"},
	{"describe", "describe <area/item/person> <_/itemName/personName> - display the description for <area/item/person>"},
	{"disguise", "disguise <person> - disguise yourself as a worker by taking their clothes"},
	{"dishearten", "dishearten <person> - decrease a person's happiness"},
	{"drop", "drop <item> - drop the specified item"},
	{"escape", "escape <item> - make your escape after completing all of the objectives"},
	{"equip", "equip <item> - make a weapon ready to use"},
	{"followme", "followme <person> - ask a person to follow you. Only works if they trust you"},
	{"give", "give <item> to <person> - give an item to a person"},
	{"goto", "goto <room> - move to the specified room if possible"},
	{"forcegoto", "forcegoto <room> - force your way into a room. Ignores locked doors but alerts the guards in the next room."},
	{"help", "help <command> - display information on the command <arg> or lists commands if <arg> is empty"},
	{"inquire", "inquire <personStat/personInfo/items> person"},
	{"inspect", "inspect <clue> - reveal information about a clue"},
	{"intimidate", "intimidate <person> - Intimidate a person to make them afraid of you. Lower there resistance to your influence."},
	{"leaveme", "leaveme <person> - Causes a person to stop following you"},
	{"peek", "peek <room> - reveal items and people in an adjacent room"},
	{"pickup", "pickup <item> - add item in the area to inventory"},
	{"place", "place <item> in <item> - place an item into another item if possible"},
	{"punch", "punch <person> - hit a person with your fists"},
	{"quit", "quit <> - exit the game"},
	{"romance", "romance <person> - romance a person and generate a new life. Other person must have full attraction."},
	{"save", "save <> - save the game"},
	{"scout", "scout <room> - investigate a location that the current room overlooks"},
	{"search", "search <area> - reveal items and people in a room"},
	{"seduce", "seduce <person> - increase attraction by a lot. hance to fail based on morality."},
	{"survey", "survey <> - reveal buildings in an area"},
	{"talk", "talk <person> - have a conversation with a person. gives a piece of information and raises their trust."},
	{"takefrom", "takefrom <person/container> <item> - take an item from a person"},
	{"unequip", "unequip <item> - hide a weapon"},
	{"unlock", "unlock <door> - unlock a door if you have the right key"},
	{"view", "view <items/time/stats personName/my stats/my companion/objectives/visited rooms> - display <inventory/time/stats for a person>"},
	{"wait", "wait - Do nothing and allow the ai to take a turn"},
}

// Help lists the command reference, or one entry when a topic is given.
type Help struct {
	Topic string
}

func (c *Help) Run(env *game.Environment) (ai.Call, error) {
	if c.Topic == "" {
		for _, e := range helpEntries {
			env.Out.Println(e.info)
		}
		return ai.Wait(), nil
	}
	for _, e := range helpEntries {
		if e.verb == c.Topic {
			env.Out.Println(e.info)
			return ai.Wait(), nil
		}
	}
	msg := fmt.Sprintf("The command %s is not listed under HELP\n", c.Topic)
	return ai.Call{}, fmt.Errorf("%s%s", msg, suggestionText(c.Topic, 1))
}
