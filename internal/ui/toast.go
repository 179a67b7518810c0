package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/eligibility-mapper/cli/internal/ui/components"
)

// ToastVariant selects the notification style.
type ToastVariant string

const (
	ToastSuccess ToastVariant = "success"
	ToastWarning ToastVariant = "warning"
	ToastError   ToastVariant = "error"
)

// ToastMode controls how a toast leaves the screen.
type ToastMode string

const (
	// ToastDismissable closes on a timer or on esc.
	ToastDismissable ToastMode = "dismissable"
	// ToastPester closes on a timer only.
	ToastPester ToastMode = "pester"
	// ToastSticky stays until esc.
	ToastSticky ToastMode = "sticky"
)

// Toast is a transient notification raised by the form for the host to show.
type Toast struct {
	Title   string
	Message string
	Variant ToastVariant
	Mode    ToastMode
}

// ToastMsg carries a Toast from the form to the host.
type ToastMsg struct {
	Toast
}

const fillAllFieldsMessage = "Fill all the fields in the form"

func warningToast(message string) Toast {
	return Toast{Title: "Warning!", Message: message, Variant: ToastWarning, Mode: ToastDismissable}
}

func successToast(message string) Toast {
	return Toast{Title: "Success!", Message: message, Variant: ToastSuccess, Mode: ToastDismissable}
}

func errorToast(message string) Toast {
	return Toast{Title: "Error!", Message: message, Variant: ToastError, Mode: ToastDismissable}
}

// emitToast wraps a toast in a command for the host.
func emitToast(t Toast) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Toast: t}
	}
}

// renderToast draws t in the box that matches its variant.
func renderToast(t Toast, width int) string {
	message := components.SanitizeOneLine(t.Message)
	title := components.SanitizeOneLine(t.Title)
	switch t.Variant {
	case ToastError:
		return components.ErrorBox(title, message, width)
	case ToastWarning:
		return components.WarningBox(title, message, width)
	case ToastSuccess:
		return components.SuccessBox(title, message, width)
	}
	if title == "" {
		title = "Info"
	}
	return components.TitledBox(title, message, width)
}
