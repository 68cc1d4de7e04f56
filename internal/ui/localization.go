package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySync              = "sync"
	KeyCancelSync        = "cancel_sync"
	KeyCancelling        = "cancelling"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyCategories        = "categories"
	KeySubset            = "subset"
	KeyOutputDirectory   = "output_directory"
	KeyBrowse            = "browse"
	KeyOpenFolder        = "open_folder"
	KeyStyleCount        = "style_count"
	KeyThickness         = "thickness"
	KeySlant             = "slant"
	KeyWidth             = "width"
	KeyApplyFilter       = "apply_filter"
	KeyIdle              = "idle"
	KeyCatalogSource     = "catalog_source"
	KeyEndpoint          = "endpoint"
	KeyOnError           = "on_error"
	KeyAbortOnError      = "abort_on_error"
	KeySkipOnError       = "skip_on_error"
	KeyRevealOnFinish    = "reveal_on_finish"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyCatalogLoaded     = "catalog_loaded"
	KeyCatalogFailed     = "catalog_failed"
	KeyNothingToSync     = "nothing_to_sync"
	KeyInvalidFilter     = "invalid_filter"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyInstalledFonts    = "installed_fonts"
	KeyNoInstalledFonts  = "no_installed_fonts"
	KeyUnreadableFont    = "unreadable_font"
	KeyInterfaceSettings = "interface_settings"
	KeySyncSettings      = "sync_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Google Fonts Sync",
		KeySync:              "Sync!",
		KeyCancelSync:        "Cancel syncing process",
		KeyCancelling:        "Cancelling after the current font...",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyCategories:        "Select categories to download",
		KeySubset:            "Select included subset",
		KeyOutputDirectory:   "Output directory",
		KeyBrowse:            "Browse",
		KeyOpenFolder:        "Open",
		KeyStyleCount:        "Min. amount of styles per font",
		KeyThickness:         "Thickness",
		KeySlant:             "Slant",
		KeyWidth:             "Width",
		KeyApplyFilter:       "Apply this filter",
		KeyIdle:              "Nothing in process...",
		KeyCatalogSource:     "Catalog (file or URL, empty for built-in)",
		KeyEndpoint:          "Download URL ({family} is replaced)",
		KeyOnError:           "When a font fails",
		KeyAbortOnError:      "Stop syncing",
		KeySkipOnError:       "Skip it and continue",
		KeyRevealOnFinish:    "Open folder after syncing",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyCatalogLoaded:     "Catalog loaded (%d families)",
		KeyCatalogFailed:     "Failed to load catalog",
		KeyNothingToSync:     "No fonts match the current filters",
		KeyInvalidFilter:     "Invalid filter",
		KeyErrorOpeningDir:   "Error opening folder",
		KeyInstalledFonts:    "Installed fonts",
		KeyNoInstalledFonts:  "No fonts found in %s",
		KeyUnreadableFont:    "unreadable",
		KeyInterfaceSettings: "Interface Settings",
		KeySyncSettings:      "Sync Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Синхронизация Google Fonts",
		KeySync:              "Синхронизировать",
		KeyCancelSync:        "Отменить синхронизацию",
		KeyCancelling:        "Отмена после текущего шрифта...",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyCategories:        "Категории для загрузки",
		KeySubset:            "Набор символов",
		KeyOutputDirectory:   "Папка шрифтов",
		KeyBrowse:            "Обзор",
		KeyOpenFolder:        "Открыть",
		KeyStyleCount:        "Мин. количество стилей",
		KeyThickness:         "Толщина",
		KeySlant:             "Наклон",
		KeyWidth:             "Ширина",
		KeyApplyFilter:       "Применить фильтр",
		KeyIdle:              "Ничего не выполняется...",
		KeyCatalogSource:     "Каталог (файл или URL, пусто для встроенного)",
		KeyEndpoint:          "URL загрузки ({family} заменяется)",
		KeyOnError:           "При ошибке шрифта",
		KeyAbortOnError:      "Остановить синхронизацию",
		KeySkipOnError:       "Пропустить и продолжить",
		KeyRevealOnFinish:    "Открыть папку после синхронизации",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyCatalogLoaded:     "Каталог загружен (%d семейств)",
		KeyCatalogFailed:     "Не удалось загрузить каталог",
		KeyNothingToSync:     "Нет шрифтов, подходящих под фильтры",
		KeyInvalidFilter:     "Неверный фильтр",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
		KeyInstalledFonts:    "Установленные шрифты",
		KeyNoInstalledFonts:  "Шрифты не найдены в %s",
		KeyUnreadableFont:    "не читается",
		KeyInterfaceSettings: "Интерфейс",
		KeySyncSettings:      "Синхронизация",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Google Fonts Sync",
		KeySync:              "Sincronizar!",
		KeyCancelSync:        "Cancelar sincronização",
		KeyCancelling:        "Cancelando após a fonte atual...",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyCategories:        "Categorias para baixar",
		KeySubset:            "Subconjunto incluído",
		KeyOutputDirectory:   "Diretório de fontes",
		KeyBrowse:            "Navegar",
		KeyOpenFolder:        "Abrir",
		KeyStyleCount:        "Mín. de estilos por fonte",
		KeyThickness:         "Espessura",
		KeySlant:             "Inclinação",
		KeyWidth:             "Largura",
		KeyApplyFilter:       "Aplicar este filtro",
		KeyIdle:              "Nada em andamento...",
		KeyCatalogSource:     "Catálogo (arquivo ou URL, vazio para o embutido)",
		KeyEndpoint:          "URL de download ({family} é substituído)",
		KeyOnError:           "Quando uma fonte falha",
		KeyAbortOnError:      "Parar sincronização",
		KeySkipOnError:       "Pular e continuar",
		KeyRevealOnFinish:    "Abrir pasta após sincronizar",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyCatalogLoaded:     "Catálogo carregado (%d famílias)",
		KeyCatalogFailed:     "Falha ao carregar catálogo",
		KeyNothingToSync:     "Nenhuma fonte corresponde aos filtros",
		KeyInvalidFilter:     "Filtro inválido",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
		KeyInstalledFonts:    "Fontes instaladas",
		KeyNoInstalledFonts:  "Nenhuma fonte encontrada em %s",
		KeyUnreadableFont:    "ilegível",
		KeyInterfaceSettings: "Interface",
		KeySyncSettings:      "Sincronização",
	}
}
