package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type searchDebounceMsg struct {
	id    int
	query string
}

// debouncer is the cancellable handle for the pending search. Each Schedule
// supersedes the previous tick; ticks carrying an old id are ignored.
type debouncer struct {
	delay time.Duration
	id    int
}

func newDebouncer(delay time.Duration) debouncer {
	return debouncer{delay: delay}
}

// Schedule replaces any pending search with one for query.
func (d *debouncer) Schedule(query string) tea.Cmd {
	d.id++
	id := d.id
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{id: id, query: query}
	})
}

// Cancel drops the pending search, if any.
func (d *debouncer) Cancel() {
	d.id++
}

// Fires reports whether msg belongs to the latest schedule.
func (d debouncer) Fires(msg searchDebounceMsg) bool {
	return msg.id == d.id
}
