package components

import (
	"fmt"

	"dna-sequence-pro/internal/sequence"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and sequence information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	statsLabel  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.statsLabel = widget.NewLabel(FormatStats(sequence.Stats{}))
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.statsLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetStats updates the sequence summary
func (sb *StatusBar) SetStats(stats sequence.Stats) {
	sb.statsLabel.SetText(FormatStats(stats))
}

// GetStats returns the sequence summary text
func (sb *StatusBar) GetStats() string {
	return sb.statsLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.statsLabel.SetText(FormatStats(sequence.Stats{}))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// FormatStats renders stats for the status bar.
func FormatStats(stats sequence.Stats) string {
	if stats.Length == 0 {
		return "Length: -- | GC: --"
	}
	text := fmt.Sprintf("Length: %d | GC: %.1f%%", stats.Length, stats.GCContent*100)
	if stats.Unknown > 0 {
		text += fmt.Sprintf(" | Unknown: %d", stats.Unknown)
	}
	return text
}
