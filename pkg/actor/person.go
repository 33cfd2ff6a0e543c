// Package actor holds the people of the simulation: NPCs and the player.
package actor

import (
	"fmt"
	"math/rand"
	"strings"

	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
)

// Type is a person's job, which drives guard behavior, disguises and
// objective generation.
type Type string

const (
	TypePlayer        Type = "player"
	TypeBarkeep       Type = "barkeep"
	TypeChef          Type = "chef"
	TypeGroundskeeper Type = "groundskeeper"
	TypeJanitor       Type = "janitor"
	TypeMaid          Type = "maid"
	TypeCivilian      Type = "civilian"
	TypeGuard         Type = "guard"
	TypeTarget        Type = "target"
)

type State string

const (
	StateNormal      State = "normal"
	StateAsleep      State = "asleep"
	StateUnconscious State = "unconscious"
	StateDead        State = "dead"
	StateDrunk       State = "drunk"
)

type AwarenessKind string

const (
	Unaware AwarenessKind = "unaware"
	Aware   AwarenessKind = "aware"
	Afraid  AwarenessKind = "afraid"
	Warn    AwarenessKind = "warn"
	Hostile AwarenessKind = "hostile"
)

type TargetKind string

const (
	NoTarget     TargetKind = "none"
	TargetPlayer TargetKind = "player"
	TargetPerson TargetKind = "person"
)

// Target is a weak reference to whoever an NPC is hostile toward.
type Target struct {
	Kind TargetKind `json:"kind"`
	Name string     `json:"name,omitempty"`
}

// Awareness is an NPC's perception state. Target is meaningful only for
// Hostile.
type Awareness struct {
	Kind   AwarenessKind `json:"kind"`
	Target Target        `json:"target,omitempty"`
}

func (a Awareness) String() string {
	switch a.Kind {
	case Unaware:
		return "Unaware of you"
	case Aware:
		return "Aware of you"
	case Afraid:
		return "Afraid of you"
	case Warn:
		return "Warning you"
	case Hostile:
		switch a.Target.Kind {
		case TargetPlayer:
			return "Hostile to You"
		case TargetPerson:
			return "Hostile to " + a.Target.Name
		default:
			return "Hostile"
		}
	default:
		return string(a.Kind)
	}
}

type ActionKind string

const (
	ActionNone       ActionKind = "none"
	ActionAttack     ActionKind = "attack"
	ActionSuicide    ActionKind = "suicide"
	ActionUseFood    ActionKind = "use_food"
	ActionPickupItem ActionKind = "pickup_item"
	ActionGoto       ActionKind = "goto"
	ActionTryWakeUp  ActionKind = "try_wake_up"
)

// Action is an NPC's pending behavior for the next AI turn.
type Action struct {
	Kind ActionKind `json:"kind"`
	Item string     `json:"item,omitempty"`
	Room string     `json:"room,omitempty"`
}

// Weighted compliance composite and combat constants.
const (
	fearWeight          = 3
	moodWeight          = 2
	trustWeight         = 5
	DefaultDamage       = 10
	AwareKnockoutChance = 20
	PoisonDamage        = 10
)

// InquireFields lists the questions the inquire command accepts.
var InquireFields = []string{
	"name", "description", "type", "gender", "sexuality", "attraction",
	"trust", "mood", "ethics", "morality", "bravery", "health", "clue", "items",
}

// Person is one NPC. Fields serialize directly into the save document.
type Person struct {
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Clue           string                  `json:"clue,omitempty"`
	Type           Type                    `json:"type"`
	Gender         personality.Gender      `json:"gender"`
	Sexuality      personality.Sexuality   `json:"sexuality"`
	State          State                   `json:"state"`
	Health         int                     `json:"health"`
	Awareness      Awareness               `json:"awareness"`
	Personality    personality.Personality `json:"personality"`
	Items          item.List               `json:"items"`
	HoldingWeapon  bool                    `json:"holding_weapon,omitempty"`
	HoldingFood    bool                    `json:"holding_food,omitempty"`
	Poisoned       bool                    `json:"poisoned,omitempty"`
	Action         Action                  `json:"action"`
	Commanded      bool                    `json:"commanded,omitempty"`
	CreatedNewLife bool                    `json:"created_new_life,omitempty"`
	Responsiveness float64                 `json:"responsiveness"`
}

// New returns a healthy, unaware person with midpoint personality tracks.
func New(name, description string, typ Type, gender personality.Gender, sexuality personality.Sexuality,
	bravery personality.Bravery, ethics personality.Ethics, morality personality.Morality, responsiveness float64) *Person {
	return &Person{
		Name:           name,
		Description:    description,
		Type:           typ,
		Gender:         gender,
		Sexuality:      sexuality,
		State:          StateNormal,
		Health:         100,
		Awareness:      Awareness{Kind: Unaware},
		Personality:    personality.New(ethics, morality, bravery),
		Items:          item.List{},
		Action:         Action{Kind: ActionNone},
		Responsiveness: responsiveness,
	}
}

// StandGuard puts the person on watch; Warn-state guards challenge
// undisguised players entering their room.
func (p *Person) StandGuard() { p.Awareness = Awareness{Kind: Warn} }

// TrySetAwareness upgrades awareness only from Unaware.
func (p *Person) TrySetAwareness(a Awareness) {
	if p.Awareness.Kind == Unaware {
		p.Awareness = a
	}
}

// HasStatusEffect reports whether the person carries a ticking effect that
// must keep running after the player leaves the room.
func (p *Person) HasStatusEffect() bool { return p.Poisoned }

// MakeDrunk boosts responsiveness and sets the drunk state.
func (p *Person) MakeDrunk(out *output.Log) {
	out.Printf("%s is inebriated", p.Name)
	p.State = StateDrunk
	p.Responsiveness += 0.20
}

// complianceScore is the weighted fear/mood/trust composite.
func (p *Person) complianceScore() float64 {
	return float64(fearWeight*p.Personality.Fear +
		moodWeight*p.Personality.Mood +
		trustWeight*p.Personality.Trust)
}

// IsCompliant reports whether the person obeys player commands.
func (p *Person) IsCompliant() bool {
	return 1.0-p.complianceScore() < p.Responsiveness
}

// EthicsBasedChance rolls a response chance seeded by ethics and boosted by
// the compliance composite.
func (p *Person) EthicsBasedChance(rng *rand.Rand) bool {
	chance := 0.80
	switch p.Personality.Ethics {
	case personality.Lawful:
		chance = 0.20
	case personality.NeutralEthics:
		chance = 0.50
	}
	return rng.Float64() < chance+p.complianceScore()
}

// MoralityBasedChance rolls a response chance seeded by morality.
func (p *Person) MoralityBasedChance(rng *rand.Rand) bool {
	chance := 0.80
	switch p.Personality.Morality {
	case personality.Blue:
		chance = 0.20
	case personality.Grey:
		chance = 0.50
	}
	return rng.Float64() < chance+p.complianceScore()
}

// EthicsAndMoralityChance succeeds when the two rolls agree.
func (p *Person) EthicsAndMoralityChance(rng *rand.Rand) bool {
	return p.EthicsBasedChance(rng) == p.MoralityBasedChance(rng)
}

// Pronouns for message templates.
func (p *Person) PossessivePronoun() string {
	switch p.Gender {
	case personality.Female:
		return "her"
	case personality.Male:
		return "his"
	default:
		return "their"
	}
}

func (p *Person) ReflexivePronoun() string {
	switch p.Gender {
	case personality.Female:
		return "herself"
	case personality.Male:
		return "himself"
	default:
		return "themself"
	}
}

func (p *Person) SubjectPronoun() string {
	switch p.Gender {
	case personality.Female:
		return "she"
	case personality.Male:
		return "he"
	default:
		return "they"
	}
}

func (p *Person) ObjectPronoun() string {
	switch p.Gender {
	case personality.Female:
		return "her"
	case personality.Male:
		return "him"
	default:
		return "them"
	}
}

// FullInfo is the one-line summary shown by area searches.
func (p *Person) FullInfo() string {
	return fmt.Sprintf("Name:%s - Gender:%s - Type:%s - State:%s - Awareness:%s",
		p.Name, p.Gender, p.Type, p.State, p.Awareness)
}

// JobClothes returns the person's uniform type, for disguises.
func (p *Person) JobClothes() (Type, error) {
	switch p.Type {
	case TypeBarkeep, TypeChef, TypeGroundskeeper, TypeJanitor, TypeMaid, TypeGuard:
		return p.Type, nil
	default:
		return "", fmt.Errorf("%s is not a person you can take clothes from", p.Name)
	}
}

// IsCompatibleWith reports sexual compatibility with the given gender.
func (p *Person) IsCompatibleWith(gender personality.Gender) bool {
	switch p.Sexuality {
	case personality.Gay:
		return gender == p.Gender
	case personality.Straight:
		return (p.Gender == personality.Male && gender == personality.Female) ||
			(p.Gender == personality.Female && gender == personality.Male)
	default:
		return true
	}
}

// ClueInfo divulges the person's clue only at high trust.
func (p *Person) ClueInfo() string {
	switch p.Personality.TrustClass() {
	case personality.FullTrust, personality.Trusting:
		return fmt.Sprintf("%s Clue:\n%s", p.Name, p.Clue)
	default:
		return fmt.Sprintf("%s does not trust you enough to give you any information", p.Name)
	}
}

// InquireData answers one inquire question.
func (p *Person) InquireData(field string) (string, error) {
	switch strings.ToLower(field) {
	case "name":
		return "Name: " + p.Name, nil
	case "description":
		return "Description: " + p.Description, nil
	case "type":
		return "Type: " + string(p.Type), nil
	case "gender":
		return "Gender: " + string(p.Gender), nil
	case "sexuality":
		return "Sexuality: " + string(p.Sexuality), nil
	case "attraction":
		return "Attraction: " + string(p.Personality.AttractionClass()), nil
	case "trust":
		return "Trust: " + string(p.Personality.TrustClass()), nil
	case "fear":
		return "Fear: " + string(p.Personality.FearClass()), nil
	case "mood":
		return "Mood: " + string(p.Personality.MoodClass()), nil
	case "ethics":
		return "Ethics: " + string(p.Personality.Ethics), nil
	case "morality":
		return "Morality: " + string(p.Personality.Morality), nil
	case "bravery":
		return "Bravery: " + string(p.Personality.Bravery), nil
	case "health":
		return fmt.Sprintf("Health: %d", p.Health), nil
	case "state":
		return "State: " + string(p.State), nil
	case "clue":
		return p.Clue, nil
	case "items":
		var b strings.Builder
		fmt.Fprintf(&b, "%s items:", p.Name)
		for _, it := range p.Items {
			b.WriteString("\n" + it.Label())
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("%s is not a valid question", field)
	}
}

// PrintStats writes the view-stats block for this person.
func (p *Person) PrintStats(out *output.Log) {
	out.Println("Name: " + p.Name)
	out.Println("Type: " + string(p.Type))
	out.Println("Gender: " + string(p.Gender))
	out.Printf("Health: %d", p.Health)
	out.Println("State: " + string(p.State))
	out.Println("Awareness: " + p.Awareness.String())
	out.Println("Attraction: " + string(p.Personality.AttractionClass()))
	out.Println("Trust: " + string(p.Personality.TrustClass()))
	out.Println("Mood: " + string(p.Personality.MoodClass()))
	out.Println("Fear: " + string(p.Personality.FearClass()))
}

// FindItem looks up an inventory item by name, case-insensitively.
func (p *Person) FindItem(name string) (item.Item, bool) { return p.Items.Find(name) }

func (p *Person) AddItem(it item.Item)     { p.Items = append(p.Items, it) }
func (p *Person) RemoveItem(name string)   { p.Items.Remove(name) }
func (p *Person) AddHealth(bonus int)      { p.Health += bonus }
func (p *Person) SetAction(a Action)       { p.Action = a }
func (p *Person) SetAwareness(a Awareness) { p.Awareness = a }

// AddFear adjusts fear, printing the boundary message when rejected.
func (p *Person) AddFear(out *output.Log, adj personality.Adjustment) {
	if err := p.Personality.AdjustFear(adj); err != nil {
		out.Println(err.Error())
	}
}

// AddTrust adjusts trust, printing the boundary message when rejected.
func (p *Person) AddTrust(out *output.Log, adj personality.Adjustment) {
	if err := p.Personality.AdjustTrust(adj); err != nil {
		out.Println(err.Error())
	}
}

// BadActionResponse shifts disposition after the player does something
// distasteful in front of this person. People who already trust and like the
// player let it slide.
func (p *Person) BadActionResponse(out *output.Log) {
	if p.Personality.Trust > 8 && p.Personality.Attraction > 8 {
		return
	}

	var adj personality.Adjustment
	switch p.Personality.Morality {
	case personality.Blue:
		adj = personality.Down(2)
		out.Printf("%s hated that", p.Name)
	case personality.Grey:
		adj = personality.Down(1)
		out.Printf("%s didn't like that", p.Name)
	default:
		adj = personality.Up(1)
		out.Printf("%s liked that", p.Name)
	}

	if err := p.Personality.AdjustAttraction(adj); err != nil {
		out.Println(err.Error())
	}
	if err := p.Personality.AdjustTrust(adj); err != nil {
		out.Println(err.Error())
	}
	if err := p.Personality.AdjustMood(adj); err != nil {
		out.Println(err.Error())
	}
}

// DeathCheck enforces the health/death invariant: health at or below zero
// zeroes health and makes the state Dead.
func (p *Person) DeathCheck(out *output.Log) {
	if p.Health <= 0 {
		p.Health = 0
		out.Printf("%s is dead", p.Name)
		p.State = StateDead
	}
}

// TickPoison applies per-turn poison damage to the living.
func (p *Person) TickPoison(out *output.Log) {
	if p.State == StateDead || !p.Poisoned {
		return
	}
	out.Printf("%s took damage from poison. Health: %d", p.Name, PoisonDamage)
	p.Health -= PoisonDamage
	p.DeathCheck(out)
}

// AttackResponse updates awareness after being attacked. Only people in the
// normal state react; guards and the brave turn hostile, the fearful cower,
// everyone else just notices.
func (p *Person) AttackResponse(out *output.Log, attacker Target) {
	if p.State != StateNormal {
		return
	}
	switch {
	case p.Type == TypeGuard || p.Personality.Bravery == personality.Brave:
		p.Awareness = Awareness{Kind: Hostile, Target: attacker}
	case p.Personality.Bravery == personality.Fearful:
		p.Awareness = Awareness{Kind: Afraid}
	default:
		p.Awareness = Awareness{Kind: Aware}
	}
	out.Printf("%s is %s", p.Name, p.Awareness)
}

// TakeDamage applies attack damage. A successful 1-in-koChance roll knocks
// the person out instead of hurting them; koChance of zero disables the roll.
func (p *Person) TakeDamage(rng *rand.Rand, out *output.Log, damage, koChance int) {
	if koChance > 0 && rng.Intn(koChance) == 0 {
		p.State = StateUnconscious
		p.Action = Action{Kind: ActionTryWakeUp}
		return
	}
	p.Health -= damage
	p.DeathCheck(out)
}

// ApplyAttack is the full player-attack pipeline: damage, poison transfer,
// awareness response and a trust collapse. Attacking a corpse only reports it.
func (p *Person) ApplyAttack(rng *rand.Rand, out *output.Log, damage, koChance int, poisoned bool) {
	if p.State == StateDead {
		out.Printf("%s is already dead", p.Name)
		return
	}
	p.TakeDamage(rng, out, damage, koChance)
	if poisoned && !p.Poisoned {
		out.Printf("%s is poisoned", p.Name)
		p.Poisoned = true
	}
	p.AttackResponse(out, Target{Kind: TargetPlayer})
	p.Personality.Trust = 0
}
