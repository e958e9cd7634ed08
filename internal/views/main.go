package views

import (
	"dna-sequence-pro/internal/models"
	"dna-sequence-pro/internal/sequence"
	"dna-sequence-pro/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single window of the application: batch toolbar on
// top, sequence panel in the middle, status bar at the bottom.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.BatchToolbar
	panel         *components.SequencePanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	runHandler    func(raw string)
	insertHandler func(char, count string)
}

// NewMainView creates the view inside window using settings for the
// initial field values.
func NewMainView(window fyne.Window, settings models.WindowSettings) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(settings)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents(settings models.WindowSettings) {
	mv.toolbar = components.NewBatchToolbar(settings.Batch.Char, settings.Batch.Count)
	mv.panel = components.NewSequencePanel(settings.DefaultInput)
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	top := container.NewVBox(
		widget.NewCard("", "", mv.toolbar.GetContainer()),
	)

	mv.mainContainer = container.NewBorder(
		top,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewVScroll(mv.panel.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetInsertHandler(func(char, count string) {
		if mv.insertHandler != nil {
			mv.insertHandler(char, count)
		}
	})

	mv.panel.SetRunHandler(func(raw string) {
		if mv.runHandler != nil {
			mv.runHandler(raw)
		}
	})
}

// SetRunHandler sets the handler for the reverse complement button
func (mv *MainView) SetRunHandler(handler func(raw string)) {
	mv.runHandler = handler
}

// SetInsertHandler sets the handler for the batch insert button
func (mv *MainView) SetInsertHandler(handler func(char, count string)) {
	mv.insertHandler = handler
}

// Input returns the input buffer
func (mv *MainView) Input() string {
	return mv.panel.Input()
}

// SetInput replaces the input buffer
func (mv *MainView) SetInput(text string) {
	mv.panel.SetInput(text)
}

// CursorOffset returns the input cursor as a rune offset
func (mv *MainView) CursorOffset() int {
	return mv.panel.CursorOffset()
}

// SetOutput replaces the output buffer
func (mv *MainView) SetOutput(text string) {
	mv.panel.SetOutput(text)
}

// Output returns the output buffer
func (mv *MainView) Output() string {
	return mv.panel.Output()
}

// FocusInput moves keyboard focus to the input area
func (mv *MainView) FocusInput() {
	mv.window.Canvas().Focus(mv.panel.InputEntry())
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetStats updates the sequence summary in the status bar
func (mv *MainView) SetStats(stats sequence.Stats) {
	mv.statusBar.SetStats(stats)
}

// Show shows the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetContainer returns the root container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// GetToolbar returns the batch insert toolbar
func (mv *MainView) GetToolbar() *components.BatchToolbar {
	return mv.toolbar
}

// GetStatusBar returns the status bar
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}
