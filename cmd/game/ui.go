package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hitman/internal/config"
	"hitman/internal/storage"
	"hitman/pkg/actor"
	"hitman/pkg/ai"
	"hitman/pkg/command"
	"hitman/pkg/game"
	"hitman/pkg/item"
	"hitman/pkg/output"
	"hitman/pkg/personality"
	"hitman/pkg/worldgen"
)

// Styling
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalSelectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("205")).
				Foreground(lipgloss.Color("230")).
				Padding(0, 1)
)

type uiMode int

const (
	modeMenu uiMode = iota
	modeGame
	modeQuitConfirm
)

// GameUI is the Bubble Tea model for the terminal game.
type GameUI struct {
	cfg    *config.Config
	store  storage.Store
	logger *slog.Logger

	mode  uiMode
	env   *game.Environment
	over  bool
	width int
	ready bool

	transcript []string
	viewport   viewport.Model
	input      textinput.Model

	// New-game / load menu state.
	nameInput  textinput.Model
	gender     personality.Gender
	saves      []storage.SaveInfo
	menuCursor int
	menuErr    string
}

type savesListedMsg struct {
	infos []storage.SaveInfo
	err   error
}

type gameStartedMsg struct {
	env   *game.Environment
	intro []string
	err   error
}

// NewGameUI creates the console model in the menu state.
func NewGameUI(cfg *config.Config, store storage.Store, logger *slog.Logger) *GameUI {
	name := textinput.New()
	name.Placeholder = "Agent"
	name.CharLimit = 24
	name.Width = 24
	name.Focus()

	in := textinput.New()
	in.Placeholder = "What do you do?"
	in.CharLimit = 200

	return &GameUI{
		cfg:       cfg,
		store:     store,
		logger:    logger,
		mode:      modeMenu,
		gender:    personality.Male,
		nameInput: name,
		input:     in,
	}
}

func (m *GameUI) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listSavesCmd())
}

func (m *GameUI) listSavesCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		infos, err := store.ListGames(ctx)
		return savesListedMsg{infos: infos, err: err}
	}
}

// newGameCmd generates a fresh world and drops the player in the spawn room.
func (m *GameUI) newGameCmd(name string, gender personality.Gender) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		rooms, objectives, err := worldgen.New(rng).Generate(cfg.RoomCount)
		if err != nil {
			return gameStartedMsg{err: fmt.Errorf("world generation failed: %w", err)}
		}
		spawn, spawnMap, err := rooms.Get("Spawn")
		if err != nil {
			return gameStartedMsg{err: fmt.Errorf("world has no spawn room: %w", err)}
		}

		pistol := &item.Ranged{
			Meta:       item.Meta{Name: "Pistol", Description: "A standard issue pistol"},
			Damage:     50,
			Visibility: item.VisibilityLow,
			Ammo:       15,
		}
		player := actor.NewPlayer(
			cases.Title(language.English).String(strings.ToLower(name)),
			"A contractor with a job to do",
			gender,
			item.List{pistol},
		)
		player.Equip(pistol)

		env := &game.Environment{
			Player:       player,
			Room:         spawn,
			Map:          spawnMap,
			Status:       game.StatusContinue,
			Objectives:   objectives,
			VisitedRooms: []string{spawn.Name},
			Rooms:        rooms,
			Out:          output.New(),
			Rng:          rng,
		}

		intro := []string{"Welcome, " + player.Name + ". Your objectives:"}
		for _, o := range env.Objectives {
			intro = append(intro, o.String())
		}
		intro = append(intro, "")
		if _, err := command.Process("survey", env); err == nil {
			intro = append(intro, env.Out.Drain()...)
		}
		return gameStartedMsg{env: env, intro: intro}
	}
}

// loadGameCmd fetches a save and rebuilds its runtime state.
func (m *GameUI) loadGameCmd(info storage.SaveInfo) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		doc, err := store.LoadGame(ctx, info.ID)
		if err != nil {
			return gameStartedMsg{err: err}
		}
		if doc == nil {
			return gameStartedMsg{err: fmt.Errorf("save %s no longer exists", info.ID)}
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		env, err := doc.Runtime(output.New(), rng)
		if err != nil {
			return gameStartedMsg{err: err}
		}

		intro := []string{fmt.Sprintf("Welcome back, %s.", env.Player.Name)}
		if _, err := command.Process("survey", env); err == nil {
			intro = append(intro, env.Out.Drain()...)
		}
		return gameStartedMsg{env: env, intro: intro}
	}
}

func (m *GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		chromeHeight := 4 // title, separator, input line, help line
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.input.Width = msg.Width - 4
		m.writeTranscript()
		return m, nil

	case savesListedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to list saves", "error", msg.err)
			m.menuErr = "Could not read saved games."
			return m, nil
		}
		m.saves = msg.infos
		return m, nil

	case gameStartedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to start game", "error", msg.err)
			m.menuErr = "Could not start the game."
			return m, nil
		}
		m.env = msg.env
		m.over = false
		m.transcript = append([]string(nil), msg.intro...)
		m.mode = modeGame
		m.input.SetValue("")
		m.input.Focus()
		m.writeTranscript()
		return m, textinput.Blink

	case tea.KeyMsg:
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeQuitConfirm:
			return m.updateQuitConfirm(msg)
		default:
			return m.updateGame(msg)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *GameUI) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil
	case "down":
		if m.menuCursor < len(m.saves) {
			m.menuCursor++
		}
		return m, nil
	case "tab":
		switch m.gender {
		case personality.Male:
			m.gender = personality.Female
		case personality.Female:
			m.gender = personality.Other
		default:
			m.gender = personality.Male
		}
		return m, nil
	case "enter":
		if m.menuCursor == 0 {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				name = "Agent"
			}
			return m, m.newGameCmd(name, m.gender)
		}
		return m, m.loadGameCmd(m.saves[m.menuCursor-1])
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *GameUI) updateQuitConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter", "esc":
		return m, tea.Quit
	case "n", "N":
		m.mode = modeGame
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *GameUI) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = modeQuitConfirm
		m.input.Blur()
		return m, nil

	case "ctrl+y":
		if err := clipboard.WriteAll(strings.Join(m.transcript, "\n")); err != nil {
			m.logger.Error("Failed to copy transcript", "error", err)
		}
		return m, nil

	case "tab":
		if m.env != nil && !m.over {
			m.input.SetValue(command.Complete(m.input.Value(), m.env))
			m.input.CursorEnd()
		}
		return m, nil

	case "enter":
		line := m.input.Value()
		m.input.SetValue("")
		if m.over {
			return m, nil
		}
		return m, m.runCommand(line)

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand executes one full turn: the player's command, then the NPC
// response it provokes.
func (m *GameUI) runCommand(line string) tea.Cmd {
	trimmed := strings.TrimSpace(line)
	if strings.EqualFold(trimmed, "clear") || strings.EqualFold(trimmed, "cls") {
		m.transcript = nil
		m.writeTranscript()
		return nil
	}

	env := m.env
	m.push(promptStyle.Render("> " + trimmed))

	cmd, err := command.Parse(line)
	if err != nil {
		if !errors.Is(err, command.ErrEmptyInput) {
			m.push(errorStyle.Render(err.Error()))
		}
		m.writeTranscript()
		return nil
	}

	call, err := cmd.Run(env)
	m.pushAll(env.Out.Drain())
	if err != nil {
		m.push(errorStyle.Render(err.Error()))
		m.writeTranscript()
		return nil
	}

	if _, ok := cmd.(*command.Save); ok {
		m.persist()
	}

	if call.Kind != ai.CallWait {
		ai.Run(env, call)
		env.UpdatePeopleStatus()
		env.CheckPlayer()
		env.AddMove()
		m.pushAll(env.Out.Drain())
	}

	var teaCmd tea.Cmd
	switch env.Status {
	case game.StatusPlayerDead:
		m.push("--You Died. Game Over.--")
		m.over = true
	case game.StatusWin:
		m.push("--You Win!--")
		m.push(fmt.Sprintf("You made %d commands", env.MoveCount))
		m.over = true
	case game.StatusPartialWin:
		m.push("--I guess you accomplished SOMETHING anyway--")
		m.over = true
	case game.StatusExit:
		m.push("--Thank you for playing!--")
		teaCmd = tea.Quit
	}
	if m.over {
		m.push(helpStyle.Render("Press esc to quit."))
	}

	m.writeTranscript()
	return teaCmd
}

func (m *GameUI) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.store.SaveGame(ctx, game.NewSaveDoc(m.env)); err != nil {
		m.logger.Error("Failed to save game", "error", err)
		m.push(errorStyle.Render("Saving failed. Your progress was not written."))
	}
}

func (m *GameUI) push(line string)       { m.transcript = append(m.transcript, line) }
func (m *GameUI) pushAll(lines []string) { m.transcript = append(m.transcript, lines...) }

// writeTranscript reformats the whole transcript for the current width and
// scrolls to the bottom.
func (m *GameUI) writeTranscript() {
	if !m.ready {
		return
	}
	width := m.viewport.Width
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(wordwrap.String(line, width))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// promptLine renders the status fragment in front of the input: name,
// gender, disguise, health, equipped weapon and room.
func (m *GameUI) promptLine() string {
	p := m.env.Player

	equipped := "unarmed"
	if it, ok := p.Equipped(); ok {
		equipped = it.ItemName()
		if r, ok := it.(*item.Ranged); ok {
			equipped = fmt.Sprintf("%s:%d", equipped, r.Ammo)
		}
	}

	parts := []string{p.Name, string(p.Gender[0])}
	if d := p.DisguiseString(); d != "" {
		parts = append(parts, d)
	}
	parts = append(parts, fmt.Sprintf("%d", p.Health), equipped, m.env.Room.Name)
	return promptStyle.Render(strings.Join(parts, " ") + " >")
}

func (m *GameUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.mode {
	case modeMenu:
		return m.menuView()
	case modeQuitConfirm:
		return m.quitConfirmView()
	}

	title := titleStyle.Render("HITMAN")
	separator := separatorStyle.Render(strings.Repeat("─", m.width))
	inputLine := m.promptLine() + " " + m.input.View()
	help := helpStyle.Render("tab: complete · ctrl+y: copy transcript · esc: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", title, m.viewport.View(), separator, inputLine, help)
}

func (m *GameUI) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HITMAN"))
	b.WriteString("\n")

	newGame := fmt.Sprintf("New game  name: %s  gender: %s", m.nameInput.View(), m.gender)
	if m.menuCursor == 0 {
		b.WriteString(modalSelectedItemStyle.Render(newGame))
	} else {
		b.WriteString("  " + newGame)
	}
	b.WriteString("\n\n")

	if len(m.saves) > 0 {
		b.WriteString("Saved games:\n")
		for i, info := range m.saves {
			line := fmt.Sprintf("%s  %d moves  %s",
				info.PlayerName, info.MoveCount, info.SavedAt.Format("Jan 2 15:04"))
			if m.menuCursor == i+1 {
				b.WriteString(modalSelectedItemStyle.Render(line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.menuErr != "" {
		b.WriteString(errorStyle.Render(m.menuErr))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓: select · tab: gender · enter: start · esc: quit"))

	modal := modalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.viewport.Height+4, lipgloss.Center, lipgloss.Center, modal)
}

func (m *GameUI) quitConfirmView() string {
	modal := modalStyle.Render("Quit the game?\n\n[y] yes   [n] no")
	return lipgloss.Place(m.width, m.viewport.Height+4, lipgloss.Center, lipgloss.Center, modal)
}
