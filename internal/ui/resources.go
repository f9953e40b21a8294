package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "filerelay-dock.svg"
)

// LogoResource is the application icon: a tray with an arrow passing through
var LogoResource = &fyne.StaticResource{
	StaticName:    AppIcon,
	StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<rect x="6" y="30" width="52" height="26" rx="4" fill="#333333"/>
<rect x="12" y="36" width="40" height="14" rx="2" fill="#ffffff"/>
<path d="M32 6 L32 40 M22 30 L32 40 L42 30" stroke="#1976d2" stroke-width="6" fill="none" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`),
}
