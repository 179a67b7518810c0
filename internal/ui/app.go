package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
	"github.com/gravitrone/eligibility-mapper/cli/internal/config"
	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

// --- Messages ---

type clearToastMsg struct{ seq int }

// App is the root model. It hosts the form, shows its toasts and tracks the
// last segment it announced.
type App struct {
	config  *config.Config
	logger  *zap.Logger
	offerID string
	keys    keyMap
	form    FormModel

	toast    *Toast
	toastSeq int
	selected *SegmentSelectedMsg

	helpOpen    bool
	quitConfirm bool
	width       int
	height      int
}

// NewApp creates the root model for offerID.
func NewApp(service api.Service, cfg *config.Config, offerID string, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return App{
		config:  cfg,
		logger:  logger,
		offerID: offerID,
		keys:    defaultKeyMap(),
		form:    NewFormModel(service, offerID, logger.Named("form"), cfg.SearchDebounce()),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.form.Init(), a.form.SpinnerTick())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd

	case ToastMsg:
		cmd := a.setToast(msg.Toast)
		return a, cmd

	case clearToastMsg:
		if msg.seq == a.toastSeq {
			a.toast = nil
		}
		return a, nil

	case SegmentSelectedMsg:
		a.selected = &msg
		a.logger.Info("segment selected", zap.String("segment_id", msg.ID), zap.String("segment_name", msg.Name))
		return a, nil

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case key.Matches(msg, a.keys.Yes), key.Matches(msg, a.keys.Quit):
				return a, tea.Quit
			case key.Matches(msg, a.keys.No):
				a.quitConfirm = false
			}
			return a, nil
		}
		if key.Matches(msg, a.keys.Quit) {
			if a.form.Busy() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}
		if a.helpOpen {
			if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Dismiss) {
				a.helpOpen = false
			}
			return a, nil
		}
		if key.Matches(msg, a.keys.Help) {
			a.helpOpen = true
			return a, nil
		}
		if a.toast != nil && a.toast.Mode != ToastPester && key.Matches(msg, a.keys.Dismiss) {
			a.toast = nil
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(a.offerID), a.width)

	var content string
	switch {
	case a.quitConfirm:
		content = a.renderQuitConfirm()
	case a.helpOpen:
		content = a.renderHelp()
	default:
		content = a.form.View()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(renderToast(*a.toast, a.width), a.width)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return components.BindingHints(a.keys.Yes, a.keys.No)
	}
	if a.helpOpen {
		return components.BindingHints(a.keys.Dismiss, a.keys.Quit)
	}
	hints := a.form.StatusHints()
	if a.selected != nil {
		hints = append([]string{MutedStyle.Render("selected " + components.SanitizeOneLine(a.selected.Name))}, hints...)
	}
	return hints
}

func (a App) renderHelp() string {
	body := renderHelpMarkdown(a.config.ThemeName(), components.BoxContentWidth(a.width))
	return components.Indent(components.TitledBox("Help", body, a.width), 1)
}

func (a App) renderQuitConfirm() string {
	body := "A write is still in flight. Quit anyway?"
	return components.Indent(components.WarningBox("Quit", body, a.width), 1)
}

// setToast shows t and schedules its removal unless it is sticky. Each toast
// gets a sequence so an older timer never clears a newer toast.
func (a *App) setToast(t Toast) tea.Cmd {
	a.toastSeq++
	a.toast = &t
	if t.Mode == ToastSticky {
		return nil
	}
	seq := a.toastSeq
	return tea.Tick(a.toastDuration(), func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

func (a App) toastDuration() time.Duration {
	return a.config.ToastDuration()
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
