package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleMenu = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleRite = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))

	styleMonster = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleShard = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindMenu
	kindRite
	kindMonster
	kindDanger
	kindShard
	kindSystem
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "*** YOU DIED"),
		strings.Contains(line, "damage from"):
		return kindDanger
	case strings.Contains(line, "Sauce Shard"),
		strings.Contains(line, "shards resonate"):
		return kindShard
	case strings.Contains(line, "appears! It hisses"),
		strings.Contains(line, "screeches at your mistake"):
		return kindMonster
	case strings.Contains(line, "'solve even' or 'solve odd'"):
		return kindRite
	case strings.HasPrefix(line, "On the chalkboard menu:"),
		strings.HasPrefix(line, "Backpack:"):
		return kindMenu
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindMenu:
		return styleMenu.Render(line)
	case kindRite:
		return styleRite.Render(line)
	case kindMonster:
		return styleMonster.Render(line)
	case kindDanger:
		return styleDanger.Render(line)
	case kindShard:
		return styleShard.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
