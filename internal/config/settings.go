package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/model"
	"github.com/ytget/font-sync/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyFontDir          = "font_directory"
	KeyLanguage         = "app_language"
	KeyCatalogSource    = "catalog_source"
	KeyFailurePolicy    = "failure_policy"
	KeyEndpoint         = "download_endpoint"
	KeyRevealOnFinish   = "reveal_on_finish"
	KeyFilterCategories = "filter_categories"
	KeyFilterSubset     = "filter_subset"
	KeyFilterStyleCount = "filter_style_count"
	KeyFilterThickness  = "filter_thickness"
	KeyFilterSlant      = "filter_slant"
	KeyFilterWidth      = "filter_width"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultCatalogSource  = "" // embedded catalog
	DefaultFailurePolicy  = download.AbortOnError
	DefaultRevealOnFinish = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFontDirectory returns the directory fonts are synced into
func (s *Settings) GetFontDirectory() string {
	dir := s.app.Preferences().String(KeyFontDir)
	if dir == "" {
		return platform.DefaultFontDirectory()
	}
	return dir
}

// SetFontDirectory sets the font directory; empty restores the system default
func (s *Settings) SetFontDirectory(dir string) {
	s.app.Preferences().SetString(KeyFontDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetCatalogSource returns the catalog file or URL; empty means the embedded catalog
func (s *Settings) GetCatalogSource() string {
	return s.app.Preferences().StringWithFallback(KeyCatalogSource, DefaultCatalogSource)
}

// SetCatalogSource sets the catalog file or URL
func (s *Settings) SetCatalogSource(source string) {
	s.app.Preferences().SetString(KeyCatalogSource, source)
}

// GetFailurePolicy returns what a sync does after a family fails
func (s *Settings) GetFailurePolicy() download.FailurePolicy {
	policy, err := download.ParseFailurePolicy(s.app.Preferences().String(KeyFailurePolicy))
	if err != nil {
		return DefaultFailurePolicy
	}
	return policy
}

// SetFailurePolicy sets the failure policy
func (s *Settings) SetFailurePolicy(policy download.FailurePolicy) {
	s.app.Preferences().SetString(KeyFailurePolicy, string(policy))
}

// GetFailurePolicyOptions returns available failure policies
func (s *Settings) GetFailurePolicyOptions() []download.FailurePolicy {
	return []download.FailurePolicy{download.AbortOnError, download.SkipOnError}
}

// GetEndpoint returns the download URL template
func (s *Settings) GetEndpoint() string {
	return s.app.Preferences().StringWithFallback(KeyEndpoint, download.DefaultEndpoint)
}

// SetEndpoint sets the download URL template; empty restores the default
func (s *Settings) SetEndpoint(endpoint string) {
	if endpoint == "" {
		s.app.Preferences().RemoveValue(KeyEndpoint)
		return
	}
	s.app.Preferences().SetString(KeyEndpoint, endpoint)
}

// GetRevealOnFinish returns whether the font directory is opened after a successful sync
func (s *Settings) GetRevealOnFinish() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnFinish, DefaultRevealOnFinish)
}

// SetRevealOnFinish sets whether to open the font directory after a sync
func (s *Settings) SetRevealOnFinish(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealOnFinish, reveal)
}

// GetCriteria returns the last used filter criteria. Without saved criteria
// every category is accepted and no other filter applies.
func (s *Settings) GetCriteria() model.Criteria {
	prefs := s.app.Preferences()

	var categories []model.Category
	for _, name := range prefs.StringList(KeyFilterCategories) {
		if c := model.Category(name); c.IsKnown() {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		categories = append(categories, model.Categories...)
	}

	return model.Criteria{
		Categories:    categories,
		Subset:        prefs.String(KeyFilterSubset),
		MinStyleCount: prefs.Int(KeyFilterStyleCount),
		MinThickness:  prefs.Int(KeyFilterThickness),
		MinSlant:      prefs.Int(KeyFilterSlant),
		MinWidth:      prefs.Int(KeyFilterWidth),
	}
}

// SetCriteria stores filter criteria for the next start
func (s *Settings) SetCriteria(c model.Criteria) {
	prefs := s.app.Preferences()

	names := make([]string, len(c.Categories))
	for i, category := range c.Categories {
		names[i] = string(category)
	}
	prefs.SetStringList(KeyFilterCategories, names)
	prefs.SetString(KeyFilterSubset, c.Subset)
	prefs.SetInt(KeyFilterStyleCount, c.MinStyleCount)
	prefs.SetInt(KeyFilterThickness, c.MinThickness)
	prefs.SetInt(KeyFilterSlant, c.MinSlant)
	prefs.SetInt(KeyFilterWidth, c.MinWidth)
}
