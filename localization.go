package slingshot

// Localization manages the indicator text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyPullToTop    = "pull_to_top"
	KeyReleaseToTop = "release_to_top"
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
		KeyPullToTop:    "Pull to scroll to the top",
		KeyReleaseToTop: "Release to scroll to the top",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyPullToTop:    "Потяните, чтобы вернуться наверх",
		KeyReleaseToTop: "Отпустите, чтобы вернуться наверх",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyPullToTop:    "Puxe para voltar ao topo",
		KeyReleaseToTop: "Solte para voltar ao topo",
	}
}
