package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/font-sync/internal/catalog"
	"github.com/ytget/font-sync/internal/config"
	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/fontinfo"
	"github.com/ytget/font-sync/internal/logging"
	"github.com/ytget/font-sync/internal/model"
	"github.com/ytget/font-sync/internal/platform"
	"github.com/ytget/font-sync/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	syncer       download.Syncer
	controller   *session.Controller
	client       *http.Client
	logger       *zap.Logger

	filters     *FilterPanel
	dirTitle    *widget.Label
	dirLabel    *widget.Label
	browseBtn   *widget.Button
	openBtn     *widget.Button
	syncBtn     *widget.Button
	progress    *widget.ProgressBar
	statusLabel *widget.Label

	catalogSource string
}

// NewRootUI creates and initializes the main UI. The embedded catalog is used
// until a configured catalog source has loaded.
func NewRootUI(window fyne.Window, app fyne.App, syncer download.Syncer, logger *zap.Logger) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	syncer.SetEndpoint(settings.GetEndpoint())
	syncer.SetFailurePolicy(settings.GetFailurePolicy())

	logger = logging.OrNop(logger)
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		syncer:       syncer,
		controller:   session.NewController(syncer, catalog.Default(), logger),
		client:       http.DefaultClient,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.controller.SetFilterCallback(ui.onFilterResult)

	// Restore the last used filters
	ui.filters.SetCriteria(settings.GetCriteria())
	ui.applyCriteria(ui.filters.Criteria())

	ui.loadCatalog(settings.GetCatalogSource())

	logger.Info("UI initialized", zap.String("font_dir", settings.GetFontDirectory()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.filters = NewFilterPanel(ui.localization, NewMobileUI(ui.app).AttributeColumns())
	ui.filters.SetOnChanged(ui.applyCriteria)

	// Output directory row
	ui.dirTitle = widget.NewLabel("")
	ui.dirTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.dirLabel = widget.NewLabel(ui.settings.GetFontDirectory())
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis
	ui.browseBtn = widget.NewButton("", ui.onBrowseDirectory)
	ui.openBtn = widget.NewButton(IconFolder, ui.onOpenFolder)
	ui.openBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, ui.dirTitle, container.NewHBox(ui.browseBtn, ui.openBtn, settingsBtn), ui.dirLabel)

	// Sync button, progress bar and status line at the bottom
	ui.syncBtn = widget.NewButton("", ui.onSyncClick)
	ui.syncBtn.Importance = widget.HighImportance

	ui.progress = widget.NewProgressBar()
	ui.progress.TextFormatter = func() string {
		return fmt.Sprintf(ProgressFormat, int(ui.progress.Value), int(ui.progress.Max))
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	bottomPanel := container.NewVBox(widget.NewSeparator(), ui.syncBtn, ui.progress, ui.statusLabel)

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator()),
		bottomPanel,
		nil,
		nil,
		container.NewVScroll(ui.filters.Content()),
	)

	ui.window.SetContent(content)
	ui.refreshUITexts()
	ui.statusLabel.SetText(ui.localization.GetText(KeyIdle))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	installedItem := fyne.NewMenuItem(ui.localization.GetText(KeyInstalledFonts), ui.onShowInstalled)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), installedItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.dirTitle.SetText(ui.localization.GetText(KeyOutputDirectory) + ":")
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	if ui.controller.Running() {
		ui.syncBtn.SetText(ui.localization.GetText(KeyCancelSync))
	} else {
		ui.syncBtn.SetText(ui.localization.GetText(KeySync))
	}
	ui.filters.RefreshTexts()
}

// applyCriteria hands changed filters to the controller and remembers them
func (ui *RootUI) applyCriteria(criteria model.Criteria) {
	if err := ui.controller.SetCriteria(criteria); err != nil {
		ui.showError(ui.localization.GetText(KeyInvalidFilter) + ": " + err.Error())
		return
	}
	ui.settings.SetCriteria(criteria)
}

// onFilterResult shows the match count unless a sync owns the status line
func (ui *RootUI) onFilterResult(count int, message string) {
	ui.logger.Debug("Filter evaluated", zap.Int("matching", count))
	if !ui.controller.Running() {
		ui.statusLabel.SetText(message)
	}
}

// loadCatalog replaces the embedded catalog with the configured source in the background
func (ui *RootUI) loadCatalog(source string) {
	if source == ui.catalogSource {
		return
	}
	ui.catalogSource = source

	if source == "" {
		ui.controller.SetCatalog(catalog.Default())
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), CatalogLoadTimeout)
		defer cancel()

		families, err := catalog.Load(ctx, ui.client, source)
		fyne.Do(func() {
			if err != nil {
				ui.logger.Error("Failed to load catalog", zap.String("source", source), zap.Error(err))
				ui.showError(ui.localization.GetText(KeyCatalogFailed) + ": " + err.Error())
				return
			}
			ui.controller.SetCatalog(families)
			if !ui.controller.Running() {
				ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyCatalogLoaded), len(families)) +
					MiddleDotSeparator + session.CheckedMessage(len(ui.controller.Filtered())))
			}
		})
	}()
}

// onSyncClick starts a sync, or cancels the running one
func (ui *RootUI) onSyncClick() {
	if ui.controller.Running() {
		if ui.controller.Cancel() {
			ui.syncBtn.Disable()
			ui.statusLabel.SetText(ui.localization.GetText(KeyCancelling))
		}
		return
	}

	dir := ui.settings.GetFontDirectory()
	job, err := ui.controller.Start(context.Background(), dir, &progressSink{ui: ui})
	if err != nil {
		if errors.Is(err, session.ErrNothingToSync) {
			ui.statusLabel.SetText(ui.localization.GetText(KeyNothingToSync))
			return
		}
		ui.showError(err.Error())
		return
	}

	ui.progress.Max = float64(job.Total())
	ui.progress.SetValue(0)
	ui.syncBtn.SetText(ui.localization.GetText(KeyCancelSync))
	ui.syncBtn.Importance = widget.DangerImportance
	ui.syncBtn.Refresh()
	ui.browseBtn.Disable()
}

// onSyncFinished restores the idle state; runs on the UI goroutine
func (ui *RootUI) onSyncFinished(result *model.SyncResult, err error) {
	ui.syncBtn.Enable()
	ui.syncBtn.SetText(ui.localization.GetText(KeySync))
	ui.syncBtn.Importance = widget.HighImportance
	ui.syncBtn.Refresh()
	ui.browseBtn.Enable()
	ui.progress.SetValue(0)

	message := download.TerminalMessage(result, err)
	if err != nil {
		message = IconError + " " + message
	}
	ui.statusLabel.SetText(message)

	if err == nil && result.Status == model.SyncStatusCompleted && ui.settings.GetRevealOnFinish() {
		ui.onOpenFolder()
	}
}

// onBrowseDirectory picks the output directory
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.settings.SetFontDirectory(uri.Path())
		ui.dirLabel.SetText(uri.Path())
	}, ui.window)
}

// onOpenFolder reveals the output directory in the file manager
func (ui *RootUI) onOpenFolder() {
	dir := ui.settings.GetFontDirectory()
	if err := platform.OpenFolder(dir); err != nil {
		ui.logger.Warn("Failed to open folder", zap.String("dir", dir), zap.Error(err))
		ui.showError(ui.localization.GetText(KeyErrorOpeningDir) + ": " + err.Error())
	}
}

// onShowInstalled lists the fonts found in the output directory
func (ui *RootUI) onShowInstalled() {
	dir := ui.settings.GetFontDirectory()

	go func() {
		entries, err := fontinfo.Inspect(dir)
		fyne.Do(func() {
			lines := installedLines(entries, ui.localization)
			if err != nil || len(lines) == 0 {
				lines = []string{fmt.Sprintf(ui.localization.GetText(KeyNoInstalledFonts), dir)}
			}

			list := widget.NewLabel(strings.Join(lines, "\n"))
			scroll := container.NewVScroll(list)
			scroll.SetMinSize(fyne.NewSize(InstalledListWidth, InstalledListHeight))

			dialog.ShowCustom(ui.localization.GetText(KeyInstalledFonts), IconClose, scroll, ui.window)
		})
	}()
}

// installedLines renders one line per font file
func installedLines(entries []fontinfo.Entry, l *Localization) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Err != nil {
			lines = append(lines, e.Path+MiddleDotSeparator+l.GetText(KeyUnreadableFont))
			continue
		}
		lines = append(lines, e.Path+MiddleDotSeparator+e.Name())
	}
	return lines
}

// onShowSettings shows the settings dialog and applies what was saved
func (ui *RootUI) onShowSettings() {
	language := ui.settings.GetLanguage()

	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.syncer.SetEndpoint(ui.settings.GetEndpoint())
		ui.syncer.SetFailurePolicy(ui.settings.GetFailurePolicy())
		ui.dirLabel.SetText(ui.settings.GetFontDirectory())
		ui.loadCatalog(ui.settings.GetCatalogSource())

		if lang := ui.settings.GetLanguage(); lang != language {
			ui.onLanguageChange(lang)
		}
	}).Show()
}

// showError puts a message on the status line
func (ui *RootUI) showError(message string) {
	ui.statusLabel.SetText(IconError + " " + message)
}

// progressSink forwards sync progress from the worker to the window
type progressSink struct {
	ui *RootUI
}

func (s *progressSink) Status(family, message string) {
	fyne.Do(func() {
		s.ui.statusLabel.SetText(StatusLine(family, message))
	})
}

func (s *progressSink) Index(processed int) {
	fyne.Do(func() {
		s.ui.progress.SetValue(float64(processed))
	})
}

func (s *progressSink) Finished(result *model.SyncResult, err error) {
	fyne.Do(func() {
		s.ui.onSyncFinished(result, err)
	})
}

// StatusLine formats a per-family progress message
func StatusLine(family, message string) string {
	return family + StatusSeparator + message
}
