package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsCommands(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"attack viktor", &Attack{Person: "viktor"}},
		{"ATTACK Viktor", &Attack{Person: "viktor"}},
		{"apply venom to knife", &Apply{Poison: "venom", Target: "knife"}},
		{"command mary attack viktor", &Order{Person: "mary", Kind: OrderAttack, Target: "viktor"}},
		{"command mary goto library", &Order{Person: "mary", Kind: OrderGoto, Target: "library"}},
		{"command mary pickup knife", &Order{Person: "mary", Kind: OrderPickup, Target: "knife"}},
		{"command mary stop", &Order{Person: "mary", Kind: OrderStop}},
		{"command mary killyourself", &Order{Person: "mary", Kind: OrderSuicide}},
		{"describe area", &Describe{Kind: DescribeArea}},
		{"describe item knife", &Describe{Kind: DescribeItem, Name: "knife"}},
		{"describe person mary", &Describe{Kind: DescribePerson, Name: "mary"}},
		{"give wine to mary", &Give{Item: "wine", Person: "mary"}},
		{"goto", &Goto{}},
		{"goto library", &Goto{Room: "library"}},
		{"forcegoto library", &ForceGoto{Room: "library"}},
		{"help", &Help{}},
		{"help attack", &Help{Topic: "attack"}},
		{"inquire clue mary", &Inquire{Question: "clue", Person: "mary"}},
		{"leaveme", &LeaveMe{}},
		{"place wine in crate", &Place{Item: "wine", Container: "crate"}},
		{"quit", &Quit{}},
		{"save", &Save{}},
		{"search", &Search{}},
		{"search area", &Search{}},
		{"search crate", &Search{Item: "crate"}},
		{"survey", &Survey{}},
		{"takefrom mary knife", &TakeFrom{Target: "mary", Item: "knife"}},
		{"teleport ballroom", &Teleport{Room: "ballroom"}},
		{"unequip", &Unequip{}},
		{"view items", &View{Kind: ViewInventory}},
		{"view time", &View{Kind: ViewTime}},
		{"view my stats", &View{Kind: ViewPlayerStats}},
		{"view my companion", &View{Kind: ViewCompanion}},
		{"view stats mary", &View{Kind: ViewPersonStats, Person: "mary"}},
		{"view objectives", &View{Kind: ViewObjectives}},
		{"view visitedrooms", &View{Kind: ViewVisitedRooms}},
		{"wait", &WaitCmd{}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"attack", "Missing person argument for ATTACK"},
		{"attack viktor now", "ATTACK expects one argument"},
		{"pickup", "Missing item argument for PICKUP"},
		{"goto library now", "GOTO expects one or zero arguments"},
		{"apply", "Missing poison and target argument for APPLY"},
		{"apply venom to", "Missing target argument for APPLY"},
		{"apply venom knife", "APPLY expects two arguments. Usage: apply <poison name> to <item name>"},
		{"command mary", "Missing command argument for COMMAND"},
		{"command mary dance viktor", "COMMAND expects three arguments"},
		{"command mary attack", "COMMAND expects three arguments"},
		{"describe knife", "Invalid arguments for DESCRIBE"},
		{"give wine to", "Missing the Person argument to GIVE"},
		{"give wine mary", "GIVE expects an item and a person as arguments"},
		{"inquire", "Missing question and person argument for INQUIRE"},
		{"inquire clue", "Missing person argument for INQUIRE"},
		{"leaveme now", "LEAVEME does not take any arguments"},
		{"place in crate", "Missing item argument for PLACE"},
		{"place wine on crate", "Missing target argument for PLACE"},
		{"survey everything", "SURVEY does not take any arguments"},
		{"takefrom mary", "Missing target argument for TAKEFROM"},
		{"teleport", "Teleport expects a room argument"},
		{"view stats", "Missing person argument to VIEW Stats"},
		{"view dragons", "Invalid argument for VIEW: dragons"},
		{"view my dragons", "Invalid arguments for VIEW"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseUnknownVerbSuggests(t *testing.T) {
	_, err := Parse("attac viktor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attac is not a valid command")
	assert.Contains(t, err.Error(), "Did you mean... :")
	assert.Contains(t, err.Error(), "ATTACK")

	// Nothing shares five leading letters with gibberish.
	_, err = Parse("xyzzy")
	require.Error(t, err)
	assert.Equal(t, "xyzzy is not a valid command", err.Error())
}
