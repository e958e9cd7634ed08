package app

import (
	"dna-sequence-pro/internal/apptheme"
	"dna-sequence-pro/internal/controllers"
	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/models"
	"dna-sequence-pro/internal/services"
	"dna-sequence-pro/internal/shutdown"
	"dna-sequence-pro/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID           = "com.dnasequencepro.app"
	MinWindowWidth  = 480
	MinWindowHeight = 400
)

// Application owns the Fyne app, the single window and the MVC parts
// behind it.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	settings   models.WindowSettings
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
}

// NewApplication creates the Fyne application and its window.
func NewApplication(settings models.WindowSettings, log logger.Logger) *Application {
	return NewApplicationWithApp(app.NewWithID(AppID), settings, log)
}

// NewApplicationWithApp builds the application on an existing Fyne app.
// The appearance in settings is applied to fyneApp before the window is
// created.
func NewApplicationWithApp(fyneApp fyne.App, settings models.WindowSettings, log logger.Logger) *Application {
	fyneApp.Settings().SetTheme(apptheme.New(settings.Appearance))

	window := fyneApp.NewWindow(settings.Title)
	window.Resize(windowSize(settings))
	window.CenterOnScreen()
	window.SetMaster()

	doc := models.NewSequenceDocument(settings.DefaultInput)
	service := services.NewTransformService(doc, log)
	controller := controllers.NewMainController(service, doc, log)
	view := views.NewMainView(window, settings)
	controller.SetMainView(view)

	mgr := shutdown.NewManager(log)
	// Registered first so the event loop stops after the controller.
	mgr.Register(shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	mgr.Register(controller)

	log.Info("Application", "application initialized", map[string]interface{}{
		"appearance":  string(settings.Appearance.Mode),
		"color_theme": string(settings.Appearance.ColorTheme),
		"width":       settings.Width,
		"height":      settings.Height,
	})

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		settings:   settings,
		view:       view,
		controller: controller,
		shutdown:   mgr,
	}
	application.setupWindowEvents()
	return application
}

// Run shows the window and blocks on the Fyne event loop.
func (a *Application) Run() error {
	stop := a.shutdown.Listen()
	defer stop()

	a.logger.Info("Application", "starting UI", nil)
	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

// Controller returns the main controller.
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

// View returns the main view.
func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.shutdown.Shutdown()
	})
}

func windowSize(settings models.WindowSettings) fyne.Size {
	width, height := settings.Width, settings.Height
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return fyne.NewSize(width, height)
}
