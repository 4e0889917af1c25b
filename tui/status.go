package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/saucequest/engine/topology"
)

// renderStatusBar produces a full-width inverted status line showing the
// current venue and the player's vitals.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	if s == nil {
		bar := " The grave holds you. Type 'new' to rise."
		return styleStatusBar.Width(m.width).Render(bar)
	}

	venue := "Nowhere"
	if v := m.repo; v != nil {
		if cur, ok := v.VenueByID(m.ctx, s.Pos); ok {
			venue = cur.Name
			if cur.City != "" {
				venue += ", " + cur.City
			}
		}
	}

	p := s.Player
	left := fmt.Sprintf(" %s", venue)
	right := fmt.Sprintf("HP %d/%d  Hun %d/%d  San %d/%d  Shards %d/20  Depth %d  Danger %d ",
		p.HP, p.MaxHP, p.Hunger, p.MaxHunger, p.Sanity, p.MaxSanity, p.SauceShards,
		s.Depth, topology.DangerOf(m.ctx, m.repo, s.Pos))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
