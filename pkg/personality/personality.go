// Package personality models the numeric disposition tracks carried by every
// person in the game. Each track holds an integer in [0,10] and maps to a
// qualitative class by fixed thresholds. Adjustments at an exact boundary are
// rejected rather than truncated, so callers must branch on the error.
package personality

import "fmt"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

type Sexuality string

const (
	Straight Sexuality = "straight"
	Gay      Sexuality = "gay"
	Bisexual Sexuality = "bisexual"
)

type Ethics string

const (
	Lawful        Ethics = "lawful"
	NeutralEthics Ethics = "neutral"
	Chaotic       Ethics = "chaotic"
)

type Morality string

const (
	Blue Morality = "blue" // principled
	Grey Morality = "grey"
	Red  Morality = "red" // ruthless
)

type Bravery string

const (
	Fearful        Bravery = "fearful"
	NeutralBravery Bravery = "neutral"
	Brave          Bravery = "brave"
)

// Qualitative classes derived from the numeric tracks.
type (
	AttractionClass string
	TrustClass      string
	MoodClass       string
	FearClass       string
)

const (
	Hate              AttractionClass = "hate"
	NeutralAttraction AttractionClass = "neutral"
	Love              AttractionClass = "love"

	Mistrust     TrustClass = "mistrust"
	Doubt        TrustClass = "doubt"
	NeutralTrust TrustClass = "neutral"
	Trusting     TrustClass = "trust"
	FullTrust    TrustClass = "full"

	Depressed   MoodClass = "depressed"
	Sad         MoodClass = "sad"
	NeutralMood MoodClass = "neutral"
	Happy       MoodClass = "happy"
	Elated      MoodClass = "elated"

	NormalFear FearClass = "normal"
	Timid      FearClass = "timid"
	Shaken     FearClass = "shaken"
	Terrified  FearClass = "terrified"
)

const (
	minStat = 0
	maxStat = 10
)

// Adjustment is a signed change to one track. Use Up and Down to build one.
type Adjustment struct {
	delta int
}

func Up(n int) Adjustment   { return Adjustment{delta: n} }
func Down(n int) Adjustment { return Adjustment{delta: -n} }

// Personality holds the four adjustable tracks plus the three fixed traits.
type Personality struct {
	Attraction int      `json:"attraction"`
	Trust      int      `json:"trust"`
	Mood       int      `json:"mood"`
	Fear       int      `json:"fear"`
	Ethics     Ethics   `json:"ethics"`
	Morality   Morality `json:"morality"`
	Bravery    Bravery  `json:"bravery"`
}

// New returns a personality with every track at the neutral midpoint.
func New(ethics Ethics, morality Morality, bravery Bravery) Personality {
	return Personality{
		Attraction: 5,
		Trust:      5,
		Mood:       5,
		Fear:       5,
		Ethics:     ethics,
		Morality:   morality,
		Bravery:    bravery,
	}
}

// adjust applies adj to the track pointed at by v. A track sitting exactly at
// a boundary rejects any further movement in that direction; results that
// would overshoot from inside the range clamp to the boundary instead.
func adjust(name string, v *int, adj Adjustment) error {
	if adj.delta < 0 && *v <= minStat {
		return fmt.Errorf("%s cannot go any lower", name)
	}
	if adj.delta > 0 && *v >= maxStat {
		return fmt.Errorf("%s cannot go any higher", name)
	}
	next := *v + adj.delta
	if next < minStat {
		next = minStat
	}
	if next > maxStat {
		next = maxStat
	}
	*v = next
	return nil
}

func (p *Personality) AdjustAttraction(adj Adjustment) error {
	return adjust("Attraction", &p.Attraction, adj)
}

func (p *Personality) AdjustTrust(adj Adjustment) error {
	return adjust("Trust", &p.Trust, adj)
}

func (p *Personality) AdjustMood(adj Adjustment) error {
	return adjust("Mood", &p.Mood, adj)
}

func (p *Personality) AdjustFear(adj Adjustment) error {
	return adjust("Fear", &p.Fear, adj)
}

func (p Personality) AttractionClass() AttractionClass {
	return ClassifyAttraction(p.Attraction)
}

func (p Personality) TrustClass() TrustClass { return ClassifyTrust(p.Trust) }
func (p Personality) MoodClass() MoodClass   { return ClassifyMood(p.Mood) }
func (p Personality) FearClass() FearClass   { return ClassifyFear(p.Fear) }

func ClassifyAttraction(v int) AttractionClass {
	switch {
	case v <= 0:
		return Hate
	case v >= 10:
		return Love
	default:
		return NeutralAttraction
	}
}

func ClassifyTrust(v int) TrustClass {
	switch {
	case v >= 10:
		return FullTrust
	case v >= 8:
		return Trusting
	case v >= 3:
		return NeutralTrust
	case v >= 1:
		return Doubt
	default:
		return Mistrust
	}
}

func ClassifyMood(v int) MoodClass {
	switch {
	case v >= 10:
		return Elated
	case v >= 7:
		return Happy
	case v >= 4:
		return NeutralMood
	case v >= 1:
		return Sad
	default:
		return Depressed
	}
}

func ClassifyFear(v int) FearClass {
	switch {
	case v >= 10:
		return Terrified
	case v >= 6:
		return Shaken
	case v >= 2:
		return Timid
	default:
		return NormalFear
	}
}
