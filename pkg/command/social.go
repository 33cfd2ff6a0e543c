package command

import (
	"fmt"

	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/game"
	"hitman/pkg/personality"
	"hitman/pkg/worldgen"
)

// Amuse tells a joke. It usually lifts the listener's mood, but one roll in
// four the joke lands badly and drags it down instead.
type Amuse struct {
	Person string
}

func (c *Amuse) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}

	verb, adj := "raised", personality.Up(2)
	if env.Rng.Intn(4) == 0 {
		verb, adj = "lowered", personality.Down(4)
	}

	if env.Rng.Float64() >= p.Responsiveness {
		env.Out.Printf("%s did not respond", p.Name)
		return ai.Move(), nil
	}
	env.Out.Printf("You %s %s's spirits", verb, p.Name)
	if err := p.Personality.AdjustMood(adj); err != nil {
		return ai.Call{}, personalityAdjFailure(p, err)
	}
	p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	return ai.Move(), nil
}

// CheerUp raises a person's mood when they respond.
type CheerUp struct {
	Person string
}

func (c *CheerUp) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}
	if env.Rng.Float64() >= p.Responsiveness {
		env.Out.Printf("%s did not respond", p.Name)
		return ai.Move(), nil
	}
	if err := p.Personality.AdjustMood(personality.Up(2)); err != nil {
		return ai.Call{}, personalityAdjFailure(p, err)
	}
	env.Out.Printf("You lifted %s's spirits", p.Name)
	p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	return ai.Move(), nil
}

// Compliment raises attraction for compatible people, and mood for everyone
// who responds.
type Compliment struct {
	Person string
}

func (c *Compliment) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}
	if env.Rng.Float64() >= p.Responsiveness {
		env.Out.Printf("%s did not respond to your compliment", p.Name)
		return ai.Move(), nil
	}

	if p.IsCompatibleWith(env.Player.Gender) {
		if err := p.Personality.AdjustAttraction(personality.Up(2)); err != nil {
			env.Out.Println(personalityAdjFailure(p, err).Error())
		} else {
			env.Out.Printf("You increased %s's attraction towards you", p.Name)
		}
	} else {
		env.Out.Printf("%s does not swing your way", p.Name)
	}

	if err := p.Personality.AdjustMood(personality.Up(2)); err != nil {
		env.Out.Println(personalityAdjFailure(p, err).Error())
	} else {
		env.Out.Printf("You lifted %s's spirits", p.Name)
	}
	return ai.Move(), nil
}

// Dishearten lowers a person's mood, which they notice and resent.
type Dishearten struct {
	Person string
}

func (c *Dishearten) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}
	if err := p.Personality.AdjustMood(personality.Down(2)); err != nil {
		return ai.Call{}, personalityAdjFailure(p, err)
	}
	env.Out.Printf("You lowered %s's spirits", p.Name)
	p.SetAwareness(actor.Awareness{Kind: actor.Aware})
	env.ApplyBadActionToAll()
	return ai.Move(), nil
}

// Intimidate raises a person's fear. The brave ignore it, and anyone may
// snap and strike back instead.
type Intimidate struct {
	Person string
}

func (c *Intimidate) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}

	var fearGain int
	switch p.Personality.Bravery {
	case personality.Fearful:
		fearGain = 3
	case personality.NeutralBravery:
		fearGain = 1
	default:
		env.Out.Printf("%s will not be intimidated by you", p.Name)
		return ai.Move(), nil
	}

	if err := p.Personality.AdjustFear(personality.Up(fearGain)); err != nil {
		return ai.Call{}, personalityAdjFailure(p, err)
	}

	// Braver people get better odds of calling the bluff.
	if env.Rng.Intn(fearGain+1) == 0 {
		env.Out.Println("The guards have been alerted")
		damage := env.Player.ApplyAngryAttack(env.Rng)
		env.Out.Printf("%s resisted your attempts to intimidate %s. %s attacked you for %d damage",
			p.Name, p.ObjectPronoun(), p.SubjectPronoun(), damage)
		env.ApplyBadActionToAll()
		return ai.Alert(actor.Target{Kind: actor.TargetPlayer}), nil
	}

	env.Out.Printf("You increased %s's fear of you. %s is now %s", p.Name, p.Name, p.Personality.FearClass())
	p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	env.ApplyBadActionToAll()
	return ai.Move(), nil
}

// Romance creates a new life with a person who fully loves the player; the
// new life joins the extra-life queue.
type Romance struct {
	Person string
}

func (c *Romance) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.CreatedNewLife {
		return ai.Call{}, fmt.Errorf("You have already created a new life with %s", p.Name)
	}

	bystanders := 0
	for _, other := range env.Room.People {
		if other.State == actor.StateNormal {
			bystanders++
		}
	}
	if bystanders > 1 {
		return ai.Call{}, fmt.Errorf("There are too many people around to do that")
	}

	if p.Personality.AttractionClass() != personality.Love {
		if p.State == actor.StateDead {
			return ai.Call{}, fmt.Errorf("You perve, %s is dead!", p.Name)
		}
		return ai.Call{}, fmt.Errorf("%s does not like you enough for romance", p.Name)
	}

	verb := "birthed"
	if env.Player.Gender == p.Gender {
		verb = "adopted"
	}
	life := worldgen.RandomLife(env.Rng)
	env.Out.Printf("You and %s %s a new person", p.Name, verb)
	env.Out.Printf("New life added: %s, %s", life.Name, life.Gender)
	p.CreatedNewLife = true
	env.AddLife(life)
	return ai.Move(), nil
}

// Seduce maxes out attraction and trust in one go, with a morality-based
// chance of a violent rejection instead.
type Seduce struct {
	Person string
}

func (c *Seduce) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}

	if !p.MoralityBasedChance(env.Rng) {
		env.Out.Printf("%s did not take kindly to your advances. You lost all of %s attraction and trust.",
			p.Name, p.PossessivePronoun())
		damage := env.Player.ApplyAngryAttack(env.Rng)
		env.Out.Printf("%s attacked you for %d damage", p.Name, damage)
		p.Personality.Attraction = 0
		p.Personality.Trust = 0
		return ai.Move(), nil
	}

	if !p.IsCompatibleWith(env.Player.Gender) {
		env.Out.Printf("%s does not swing your way", p.Name)
	} else {
		env.Out.Printf("%s accepted your advances", p.Name)
		if p.Personality.Attraction == 10 {
			env.Out.Printf("%s's attraction is already maxed out", p.Name)
		} else {
			env.Out.Printf("You maxed out %s's attraction and trust to you", p.Name)
			p.Personality.Attraction = 10
			p.Personality.Trust = 10
		}
	}
	p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	return ai.Move(), nil
}

// Talk trades a random piece of information for a chance at more trust.
type Talk struct {
	Person string
}

func (c *Talk) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.Personality.Trust <= 2 {
		env.Out.Printf("%s does not trust you enough to talk to you", p.Name)
		return ai.Move(), nil
	}

	field := actor.InquireFields[env.Rng.Intn(len(actor.InquireFields)-1)]
	info, err := p.InquireData(field)
	if err != nil {
		return ai.Call{}, err
	}
	env.Out.Printf("%s gave you some information:", p.Name)
	env.Out.Println(info)

	if env.Rng.Float64() < p.Responsiveness {
		if err := p.Personality.AdjustTrust(personality.Up(1)); err != nil {
			return ai.Call{}, personalityAdjFailure(p, err)
		}
		env.Out.Printf("You increased %s's trust in you", p.Name)
		p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	}
	return ai.Move(), nil
}

// Inquire asks a person one specific question about themselves.
type Inquire struct {
	Question string
	Person   string
}

func (c *Inquire) Run(env *game.Environment) (ai.Call, error) {
	p, ok := env.FindPerson(c.Person)
	if !ok {
		return ai.Call{}, personFindFailure(c.Person)
	}
	if p.State == actor.StateDead {
		return ai.Call{}, fmt.Errorf("%s is dead", p.Name)
	}
	if p.Personality.Trust <= 2 {
		return ai.Call{}, fmt.Errorf("%s does not trust you enough to disclose their %s", c.Person, c.Question)
	}
	resp, err := p.InquireData(c.Question)
	if err != nil {
		return ai.Call{}, err
	}
	env.Out.Printf("Response: \n%s", resp)
	p.TrySetAwareness(actor.Awareness{Kind: actor.Aware})
	return ai.Move(), nil
}
