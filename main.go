package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/font-sync/internal/config"
	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/logging"
	"github.com/ytget/font-sync/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.font-sync"
	AppName = "Font Sync"

	WindowWidth  = 760
	WindowHeight = 560
)

func main() {
	logger, err := logging.New(os.Getenv(config.EnvLogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, using INFO\n", err)
		logger, _ = logging.New(logging.LevelInfo)
	}
	defer logger.Sync()

	logger.Info("Font Sync starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, download.NewService(nil, logger), logger)

	// Show and run
	myWindow.ShowAndRun()
}
