// Package command parses player input into commands and executes them
// against the environment. Every command reports how loud it was through the
// ai.Call it returns, which drives the NPC turn that follows.
package command

import (
	"fmt"

	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/game"
)

// Command is one parsed player action. Run mutates the environment and
// returns the AI call for the rest of the turn. A non-nil error is the
// user-facing failure line; no AI turn runs after a failure.
type Command interface {
	Run(env *game.Environment) (ai.Call, error)
}

// Process parses and runs one line of input.
func Process(input string, env *game.Environment) (ai.Call, error) {
	cmd, err := Parse(input)
	if err != nil {
		return ai.Call{}, err
	}
	return cmd.Run(env)
}

// Shared failure lines. These are game prose, not wrapped errors.

func personFindFailure(name string) error {
	return fmt.Errorf("%s is not a valid person in this location", name)
}

func inventoryItemFindFailure(name string) error {
	return fmt.Errorf("The item %s is not in your inventory", name)
}

func roomItemFindFailure(itemName, roomName string) error {
	return fmt.Errorf("The item %s does not exist in %s", itemName, roomName)
}

func roomFindFailure(name string) error {
	return fmt.Errorf("%s is not a nearby location", name)
}

func personalityAdjFailure(p *actor.Person, err error) error {
	return fmt.Errorf("%s's %s", p.Name, err)
}
