package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollEndMsg fires once the wheel has been quiet for the settle period.
// Only the message matching the latest wheel event ends the gesture.
type scrollEndMsg struct {
	panel string
	seq   int
}

// scrollCoupler converts wheel movement over the panel into either host
// scrolling or height changes.
type scrollCoupler struct {
	panel  string
	settle time.Duration

	scrolling bool
	seq       int
}

func newScrollCoupler(panelID string, settle time.Duration) *scrollCoupler {
	return &scrollCoupler{panel: panelID, settle: settle}
}

// apply handles delta rows of wheel movement, negative towards the top.
//
// Moving up scrolls the host until its offset reaches 0; whatever is left is
// overscroll and grows the panel, possibly beyond its max height. Moving
// down while the panel is not fully open pins the host to offset 0 and
// shrinks the panel instead; once fully open the host scrolls normally.
func (s *scrollCoupler) apply(host Host, hm *heightModel, delta int) {
	if delta == 0 {
		return
	}
	s.scrolling = true
	offset := host.ScrollOffset()

	if delta < 0 {
		next := offset + delta
		if next >= 0 {
			host.SetScrollOffset(next)
			return
		}
		host.SetScrollOffset(0)
		hm.setHeight(max(hm.height-float64(next), hm.handler))
		return
	}

	if hm.height < hm.max {
		if offset != 0 {
			host.SetScrollOffset(0)
		}
		hm.setHeight(max(hm.height-float64(delta), hm.handler))
		return
	}
	host.SetScrollOffset(offset + delta)
}

// settleCmd schedules the end of the current wheel gesture.
func (s *scrollCoupler) settleCmd() tea.Cmd {
	s.seq++
	seq, panelID := s.seq, s.panel
	return tea.Tick(s.settle, func(time.Time) tea.Msg {
		return scrollEndMsg{panel: panelID, seq: seq}
	})
}

// end reports whether msg closes the current gesture.
func (s *scrollCoupler) end(seq int) bool {
	if !s.scrolling || seq != s.seq {
		return false
	}
	s.scrolling = false
	return true
}

// abort forgets the current gesture without resolving it.
func (s *scrollCoupler) abort() {
	s.scrolling = false
}
