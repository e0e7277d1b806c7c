package app

import (
	"receipt-editor/internal/config"
	"receipt-editor/internal/controllers"
	"receipt-editor/internal/idgen"
	"receipt-editor/internal/logger"
	"receipt-editor/internal/models"
	"receipt-editor/internal/services"
	"receipt-editor/internal/shutdown"
	"receipt-editor/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Редактор кассовых чеков"
	AppID      = "com.receipteditor.app"
	AppVersion = "1.0.0"

	MinWindowWidth  = 640
	MinWindowHeight = 480
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	controller *controllers.MainController
	shutdown   *shutdown.Manager
}

// NewApplication builds the ledger window and its collaborators on fyneApp.
// The organization registry and receipt ledger live for the whole session.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger, ids idgen.Generator) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}
	if ids == nil {
		ids = idgen.NewRandom()
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(windowSize(cfg.Window))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"preview_width": cfg.Preview.Width,
		"cashiers":      len(cfg.Cashiers),
	})

	registry := models.NewOrganizationRegistry()
	ledger := models.NewReceiptLedger()
	service := services.NewReceiptService(registry, ledger, ids, log, services.ServiceOptions{
		Cashiers:     cfg.Cashiers,
		PreviewWidth: cfg.Preview.Width,
		Contact:      cfg.Preview.Contact,
	})

	controller := controllers.NewMainController(service, log)
	controller.SetMainView(views.NewMainView(window))

	manager := shutdown.NewManager(log)
	manager.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		shutdown:   manager,
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func windowSize(cfg config.WindowConfig) fyne.Size {
	width, height := cfg.Width, cfg.Height
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return fyne.NewSize(width, height)
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.Shutdown()
	return nil
}

// Shutdown stops registered components once.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

// Window returns the ledger window.
func (a *Application) Window() fyne.Window {
	return a.window
}

// Controller returns the main controller.
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}
