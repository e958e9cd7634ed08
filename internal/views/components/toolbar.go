package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// BatchToolbar is the quick insert strip at the top of the window.
type BatchToolbar struct {
	container    *fyne.Container
	titleLabel   *widget.Label
	charEntry    *widget.Entry
	countEntry   *widget.Entry
	insertButton *widget.Button

	// Event handlers
	insertHandler func(char, count string)
}

// NewBatchToolbar creates the toolbar seeded with the given character
// and count.
func NewBatchToolbar(char, count string) *BatchToolbar {
	toolbar := &BatchToolbar{}
	toolbar.createComponents(char, count)
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *BatchToolbar) createComponents(char, count string) {
	t.titleLabel = widget.NewLabelWithStyle("Batch Insert", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	t.charEntry = widget.NewEntry()
	t.charEntry.SetPlaceHolder("Seq")
	t.charEntry.SetText(char)

	t.countEntry = widget.NewEntry()
	t.countEntry.SetPlaceHolder("Num")
	t.countEntry.SetText(count)

	t.insertButton = widget.NewButtonWithIcon("Insert", theme.ContentAddIcon(), nil)
	t.insertButton.Importance = widget.HighImportance
}

// buildLayout constructs the toolbar layout
func (t *BatchToolbar) buildLayout() {
	fieldSize := fyne.NewSize(70, t.charEntry.MinSize().Height)

	t.container = container.NewHBox(
		t.titleLabel,
		container.New(layout.NewGridWrapLayout(fieldSize), t.charEntry),
		widget.NewLabel("×"),
		container.New(layout.NewGridWrapLayout(fieldSize), t.countEntry),
		t.insertButton,
	)
}

// setupEventHandlers connects button events
func (t *BatchToolbar) setupEventHandlers() {
	t.insertButton.OnTapped = func() {
		if t.insertHandler != nil {
			t.insertHandler(t.charEntry.Text, t.countEntry.Text)
		}
	}
}

// SetInsertHandler sets the handler called with the raw field values
func (t *BatchToolbar) SetInsertHandler(handler func(char, count string)) {
	t.insertHandler = handler
}

// Values returns the current character and count fields
func (t *BatchToolbar) Values() (string, string) {
	return t.charEntry.Text, t.countEntry.Text
}

// InsertButton returns the insert button
func (t *BatchToolbar) InsertButton() *widget.Button {
	return t.insertButton
}

// GetContainer returns the toolbar container
func (t *BatchToolbar) GetContainer() *fyne.Container {
	return t.container
}
