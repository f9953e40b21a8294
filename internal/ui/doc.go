// Package ui contains the fyne-based dock: the count badge that accepts file
// drops and starts drags, the preview overlay, and the wiring to the native
// window guardian. All UI strings are localized via Localization.
package ui
