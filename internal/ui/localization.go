package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyNotice         = "notice"
	KeyEmptyList      = "empty_list"
	KeyMoreFiles      = "more_files"
	KeyAlreadyRunning = "already_running"
)

// LanguageSystem selects the language from the OS locale
const LanguageSystem = "system"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages keep the current one.
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem || code == "" {
		code = systemLanguage()
	}
	code = strings.ToLower(code)

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
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

// MoreFiles formats the preview summary line for n unlisted entries
func (l *Localization) MoreFiles(n int) string {
	return fmt.Sprintf(l.GetText(KeyMoreFiles), n)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// systemLanguage returns the two-letter language of the OS locale
func systemLanguage() string {
	locale := string(lang.SystemLocale())
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "FileRelay Dock",
		KeyNotice:         "Notice",
		KeyEmptyList:      "(no files yet)",
		KeyMoreFiles:      "...and %d more files",
		KeyAlreadyRunning: "FileRelay Dock is already running.",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:       "FileRelay Dock",
		KeyNotice:         "提示",
		KeyEmptyList:      "（暂无文件）",
		KeyMoreFiles:      "……还有 %d 个文件",
		KeyAlreadyRunning: "程序已经在运行。",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "FileRelay Dock",
		KeyNotice:         "Уведомление",
		KeyEmptyList:      "(файлов пока нет)",
		KeyMoreFiles:      "...и ещё %d файлов",
		KeyAlreadyRunning: "FileRelay Dock уже запущен.",
	}
}
