package ui

import (
	"fmt"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/font-sync/internal/catalog"
	"github.com/ytget/font-sync/internal/config"
	"github.com/ytget/font-sync/internal/download"
)

var errMissingPlaceholder = fmt.Errorf("URL must contain %s", download.FamilyPlaceholder)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	fontDirEntry   *widget.Entry
	catalogEntry   *widget.Entry
	endpointEntry  *widget.Entry
	policyRadio    *widget.RadioGroup
	revealCheck    *widget.Check
	languageSelect *widget.Select

	policyLabels   map[download.FailurePolicy]string
	languageLabels map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to the settings.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Font directory selection
	sd.fontDirEntry = widget.NewEntry()
	sd.fontDirEntry.SetPlaceHolder(l.GetText(KeyOutputDirectory))

	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	fontDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.fontDirEntry)

	sd.catalogEntry = widget.NewEntry()
	sd.catalogEntry.SetPlaceHolder(catalog.DefaultMetadataURL)

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(download.DefaultEndpoint)
	sd.endpointEntry.Validator = validateEndpoint

	// Failure policy
	sd.policyLabels = map[download.FailurePolicy]string{
		download.AbortOnError: l.GetText(KeyAbortOnError),
		download.SkipOnError:  l.GetText(KeySkipOnError),
	}
	policyOptions := []string{}
	for _, policy := range sd.settings.GetFailurePolicyOptions() {
		policyOptions = append(policyOptions, sd.policyLabels[policy])
	}
	sd.policyRadio = widget.NewRadioGroup(policyOptions, nil)
	sd.policyRadio.Required = true

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealOnFinish), nil)

	// Language selection, shown by name
	sd.languageLabels = sd.settings.GetLanguageOptions()
	languageOptions := []string{}
	for _, name := range sd.languageLabels {
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeyLanguage)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeySyncSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyOutputDirectory)+":"),
		fontDirRow,

		widget.NewLabel(l.GetText(KeyCatalogSource)+":"),
		sd.catalogEntry,

		widget.NewLabel(l.GetText(KeyEndpoint)+":"),
		sd.endpointEntry,

		widget.NewLabel(l.GetText(KeyOnError)+":"),
		sd.policyRadio,

		sd.revealCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.fontDirEntry.SetText(sd.settings.GetFontDirectory())
	sd.catalogEntry.SetText(sd.settings.GetCatalogSource())
	sd.endpointEntry.SetText(sd.settings.GetEndpoint())
	sd.policyRadio.SetSelected(sd.policyLabels[sd.settings.GetFailurePolicy()])
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnFinish())
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.fontDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the widget values to the settings
func (sd *SettingsDialog) apply() {
	sd.settings.SetFontDirectory(strings.TrimSpace(sd.fontDirEntry.Text))
	sd.settings.SetCatalogSource(strings.TrimSpace(sd.catalogEntry.Text))

	if endpoint := strings.TrimSpace(sd.endpointEntry.Text); validateEndpoint(endpoint) == nil {
		sd.settings.SetEndpoint(endpoint)
	}

	for policy, label := range sd.policyLabels {
		if label == sd.policyRadio.Selected {
			sd.settings.SetFailurePolicy(policy)
		}
	}

	sd.settings.SetRevealOnFinish(sd.revealCheck.Checked)

	for code, name := range sd.languageLabels {
		if name == sd.languageSelect.Selected {
			sd.settings.SetLanguage(code)
		}
	}
}

// validateEndpoint accepts an empty value (default) or a template with the family placeholder
func validateEndpoint(endpoint string) error {
	if endpoint == "" || strings.Contains(endpoint, download.FamilyPlaceholder) {
		return nil
	}
	return errMissingPlaceholder
}
