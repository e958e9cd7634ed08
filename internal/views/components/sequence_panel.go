package components

import (
	"dna-sequence-pro/internal/sequence"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SequencePanel holds the input area, the run button and the output area.
type SequencePanel struct {
	container  *fyne.Container
	inputText  *widget.Entry
	outputText *widget.Entry
	runButton  *widget.Button

	runHandler func(raw string)
}

// NewSequencePanel creates the panel with input pre-filled.
func NewSequencePanel(input string) *SequencePanel {
	panel := &SequencePanel{}
	panel.createComponents(input)
	panel.buildLayout()
	panel.setupEventHandlers()
	return panel
}

func (p *SequencePanel) createComponents(input string) {
	// Rows must stay logical lines for CursorOffset, so the input never wraps.
	p.inputText = newSequenceEntry(fyne.TextWrapOff)
	p.inputText.SetText(input)

	p.outputText = newSequenceEntry(fyne.TextWrapBreak)

	p.runButton = widget.NewButtonWithIcon("Run Reverse Complement", theme.MediaPlayIcon(), nil)
	p.runButton.Importance = widget.SuccessImportance
}

func newSequenceEntry(wrap fyne.TextWrap) *widget.Entry {
	entry := widget.NewMultiLineEntry()
	entry.TextStyle = fyne.TextStyle{Monospace: true}
	entry.Wrapping = wrap
	entry.SetMinRowsVisible(6)
	return entry
}

func (p *SequencePanel) buildLayout() {
	p.container = container.NewVBox(
		widget.NewLabel("Input Sequence"),
		p.inputText,
		p.runButton,
		widget.NewLabel("Result"),
		p.outputText,
	)
}

func (p *SequencePanel) setupEventHandlers() {
	p.runButton.OnTapped = func() {
		if p.runHandler != nil {
			p.runHandler(p.inputText.Text)
		}
	}
}

// SetRunHandler sets the handler called with the raw input text
func (p *SequencePanel) SetRunHandler(handler func(raw string)) {
	p.runHandler = handler
}

// Input returns the input buffer
func (p *SequencePanel) Input() string {
	return p.inputText.Text
}

// SetInput replaces the input buffer
func (p *SequencePanel) SetInput(text string) {
	p.inputText.SetText(text)
}

// CursorOffset returns the input cursor as a rune offset
func (p *SequencePanel) CursorOffset() int {
	return sequence.CursorOffset(p.inputText.Text, p.inputText.CursorRow, p.inputText.CursorColumn)
}

// Output returns the output buffer
func (p *SequencePanel) Output() string {
	return p.outputText.Text
}

// SetOutput replaces the output buffer
func (p *SequencePanel) SetOutput(text string) {
	p.outputText.SetText(text)
}

// RunButton returns the primary action button
func (p *SequencePanel) RunButton() *widget.Button {
	return p.runButton
}

// InputEntry exposes the input widget for focus handling
func (p *SequencePanel) InputEntry() *widget.Entry {
	return p.inputText
}

// GetContainer returns the panel container
func (p *SequencePanel) GetContainer() *fyne.Container {
	return p.container
}
