package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/eventboard/internal/core/notify"
	"github.com/colonyops/eventboard/internal/core/styles"
	"github.com/colonyops/eventboard/internal/tui/components"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack, oldest at top.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func toastStyle(level notify.Level) (string, lipgloss.Style) {
	switch level {
	case notify.LevelError:
		return styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		return styles.IconNotifyWarning, styles.ToastWarningStyle
	case notify.LevelSuccess:
		return styles.IconNotifySuccess, styles.ToastSuccessStyle
	default:
		return styles.IconNotifyInfo, styles.ToastInfoStyle
	}
}

func renderToast(t toast) string {
	icon, style := toastStyle(t.notification.Level)
	msg := icon + " " + t.notification.Message
	if t.repeats > 0 {
		msg += fmt.Sprintf(" (x%d)", t.repeats+1)
	}
	return style.Width(toastWidth).Render(msg)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	x := max(width-lipgloss.Width(toastContent)-1, 0)
	y := max(height-lipgloss.Height(toastContent), 0)
	return components.Place(background, toastContent, x, y)
}
