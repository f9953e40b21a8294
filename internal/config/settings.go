package config

import (
	"bytes"
	"errors"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/filerelay/filerelay-dock/internal/logger"
	"github.com/filerelay/filerelay-dock/internal/model"
)

// EnvPrefix prefixes environment overrides, e.g. FILERELAY_WINDOW_MAX_COUNT.
const EnvPrefix = "FILERELAY"

// Settings keys, as "section.key" in the config file
const (
	KeyX             = "window.x"
	KeyY             = "window.y"
	KeyWidth         = "window.w"
	KeyHeight        = "window.h"
	KeyTopmost       = "window.topmost"
	KeyMaxCount      = "window.max_count"
	KeyHealInterval  = "window.heal_interval_ms"
	KeyShowSingleTip = "window.show_single_tip"
	KeyLanguage      = "window.language"

	KeyBackground  = "style.bg"
	KeyForeground  = "style.fg"
	KeyFontSize    = "style.font_size"
	KeyFontName    = "style.font_name"
	KeyLayered     = "style.layered"
	KeyAlpha       = "style.alpha"
	KeyUseColorKey = "style.colorkey"
	KeyColorKey    = "style.colorkey_rgb"

	KeyTipWidth        = "tip.w"
	KeyTipMinHeight    = "tip.min_h"
	KeyTipMaxLines     = "tip.max_lines"
	KeyTipMaxHeight    = "tip.max_h"
	KeyTipFontSize     = "tip.font_size"
	KeyTipMargin       = "tip.margin"
	KeyTipAutoClose    = "tip.auto_close_ms"
	KeyTipClickThrough = "tip.click_through"
)

// Default values
const (
	DefaultX             = -430
	DefaultY             = -1
	DefaultWidth         = 60
	DefaultHeight        = 43
	DefaultTopmost       = true
	DefaultMaxCount      = model.HardCeiling
	DefaultHealInterval  = 1000
	DefaultShowSingleTip = false
	DefaultLanguage      = "system"

	DefaultBackground = "0xFFFFFF"
	DefaultForeground = "0x333333"
	DefaultFontSize   = 16
	DefaultFontName   = "Segoe UI"
	DefaultLayered    = false
	DefaultAlpha      = 255
	DefaultColorKey   = "0x202020"

	DefaultTipWidth        = 320
	DefaultTipMinHeight    = 80
	DefaultTipMaxLines     = 30
	DefaultTipMaxHeight    = 0
	DefaultTipFontSize     = 9
	DefaultTipMargin       = 8
	DefaultTipAutoClose    = 2000
	DefaultTipClickThrough = false
)

// Limits applied after loading
const (
	MinTipWidth     = 180
	MinTipMinHeight = 60
	MaxTipMaxLines  = 200
	MinTipFontSize  = 8
	MaxTipFontSize  = 28
)

// Window holds dock window geometry and behaviour.
type Window struct {
	X, Y          int // negative values are offsets from the right/bottom edge
	Width, Height int
	Topmost       bool
	MaxCount      int
	HealInterval  time.Duration // 0 disables the guardian
	ShowSingleTip bool
	Language      string
}

// Style holds dock appearance.
type Style struct {
	Background  color.NRGBA
	Foreground  color.NRGBA
	FontSize    int
	FontName    string
	Layered     bool
	Alpha       uint8
	UseColorKey bool
	ColorKey    color.NRGBA
}

// Tip holds preview overlay appearance and behaviour.
type Tip struct {
	Width        int
	MinHeight    int
	MaxLines     int
	MaxHeight    int // 0 derives the cap from MaxLines
	FontSize     int
	Margin       int
	AutoClose    time.Duration // 0 keeps the overlay open
	ClickThrough bool
}

// Settings is the configuration snapshot loaded at startup. It is not
// modified after Load returns.
type Settings struct {
	Window Window
	Style  Style
	Tip    Tip
	Path   string // file the snapshot was read from, "" for pure defaults
}

var log = logger.ComponentLogger("config")

// NewSettings returns the built-in defaults.
func NewSettings() *Settings {
	s, _ := fromViper(newViper())
	return s
}

// Load reads path and returns the resulting settings. A file that is
// missing, unreadable or malformed, or a malformed key, falls back to the
// defaults; startup never fails on configuration.
func Load(path string) *Settings {
	v := newViper()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Info("config file not found, using defaults", "path", path)
		case err != nil:
			log.Warn("config file unreadable, using defaults", "path", path, "error", err)
		default:
			if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
				log.Warn("config file malformed, using defaults", "path", path, "error", err)
				v = newViper()
			}
		}
	}

	s, bad := fromViper(v)
	for _, key := range bad {
		log.Warn("invalid config value, using default", "key", key, "value", v.Get(key))
	}
	s.Path = path
	return s
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault(KeyX, DefaultX)
	v.SetDefault(KeyY, DefaultY)
	v.SetDefault(KeyWidth, DefaultWidth)
	v.SetDefault(KeyHeight, DefaultHeight)
	v.SetDefault(KeyTopmost, DefaultTopmost)
	v.SetDefault(KeyMaxCount, DefaultMaxCount)
	v.SetDefault(KeyHealInterval, DefaultHealInterval)
	v.SetDefault(KeyShowSingleTip, DefaultShowSingleTip)
	v.SetDefault(KeyLanguage, DefaultLanguage)

	v.SetDefault(KeyBackground, DefaultBackground)
	v.SetDefault(KeyForeground, DefaultForeground)
	v.SetDefault(KeyFontSize, DefaultFontSize)
	v.SetDefault(KeyFontName, DefaultFontName)
	v.SetDefault(KeyLayered, DefaultLayered)
	v.SetDefault(KeyAlpha, DefaultAlpha)
	v.SetDefault(KeyUseColorKey, false)
	v.SetDefault(KeyColorKey, DefaultColorKey)

	v.SetDefault(KeyTipWidth, DefaultTipWidth)
	v.SetDefault(KeyTipMinHeight, DefaultTipMinHeight)
	v.SetDefault(KeyTipMaxLines, DefaultTipMaxLines)
	v.SetDefault(KeyTipMaxHeight, DefaultTipMaxHeight)
	v.SetDefault(KeyTipFontSize, DefaultTipFontSize)
	v.SetDefault(KeyTipMargin, DefaultTipMargin)
	v.SetDefault(KeyTipAutoClose, DefaultTipAutoClose)
	v.SetDefault(KeyTipClickThrough, DefaultTipClickThrough)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// reader coerces raw values and remembers keys that had to fall back.
type reader struct {
	v   *viper.Viper
	bad []string
}

func (r *reader) int(key string, def int) int {
	n, err := cast.ToIntE(r.v.Get(key))
	if err != nil {
		r.bad = append(r.bad, key)
		return def
	}
	return n
}

func (r *reader) bool(key string, def bool) bool {
	raw := r.v.Get(key)
	if s, ok := raw.(string); ok {
		raw = strings.TrimSpace(s)
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		r.bad = append(r.bad, key)
		return def
	}
	return b
}

func (r *reader) string(key, def string) string {
	s, err := cast.ToStringE(r.v.Get(key))
	if err != nil || strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}

func (r *reader) color(key, def string) color.NRGBA {
	fallback, _ := ParseColor(def)
	c, err := ParseColor(r.string(key, def))
	if err != nil {
		r.bad = append(r.bad, key)
		return fallback
	}
	return c
}

func fromViper(v *viper.Viper) (*Settings, []string) {
	r := &reader{v: v}
	s := &Settings{}

	s.Window = Window{
		X:             r.int(KeyX, DefaultX),
		Y:             r.int(KeyY, DefaultY),
		Width:         r.int(KeyWidth, DefaultWidth),
		Height:        r.int(KeyHeight, DefaultHeight),
		Topmost:       r.bool(KeyTopmost, DefaultTopmost),
		MaxCount:      clamp(r.int(KeyMaxCount, DefaultMaxCount), 1, model.HardCeiling),
		HealInterval:  millis(atLeast(r.int(KeyHealInterval, DefaultHealInterval), 0)),
		ShowSingleTip: r.bool(KeyShowSingleTip, DefaultShowSingleTip),
		Language:      r.string(KeyLanguage, DefaultLanguage),
	}
	if s.Window.Width < 1 {
		s.Window.Width = DefaultWidth
	}
	if s.Window.Height < 1 {
		s.Window.Height = DefaultHeight
	}

	s.Style = Style{
		Background:  r.color(KeyBackground, DefaultBackground),
		Foreground:  r.color(KeyForeground, DefaultForeground),
		FontSize:    atLeast(r.int(KeyFontSize, DefaultFontSize), 1),
		FontName:    r.string(KeyFontName, DefaultFontName),
		Layered:     r.bool(KeyLayered, DefaultLayered),
		Alpha:       uint8(clamp(r.int(KeyAlpha, DefaultAlpha), 0, 255)),
		UseColorKey: r.bool(KeyUseColorKey, false),
		ColorKey:    r.color(KeyColorKey, DefaultColorKey),
	}

	s.Tip = Tip{
		Width:        atLeast(r.int(KeyTipWidth, DefaultTipWidth), MinTipWidth),
		MinHeight:    atLeast(r.int(KeyTipMinHeight, DefaultTipMinHeight), MinTipMinHeight),
		MaxLines:     clamp(r.int(KeyTipMaxLines, DefaultTipMaxLines), 1, MaxTipMaxLines),
		MaxHeight:    atLeast(r.int(KeyTipMaxHeight, DefaultTipMaxHeight), 0),
		FontSize:     clamp(r.int(KeyTipFontSize, DefaultTipFontSize), MinTipFontSize, MaxTipFontSize),
		Margin:       atLeast(r.int(KeyTipMargin, DefaultTipMargin), 0),
		AutoClose:    millis(atLeast(r.int(KeyTipAutoClose, DefaultTipAutoClose), 0)),
		ClickThrough: r.bool(KeyTipClickThrough, DefaultTipClickThrough),
	}

	return s, r.bad
}

// ResolvePosition converts negative offsets into absolute coordinates for a
// screen of the given size and clamps the window on-screen.
func (w Window) ResolvePosition(screenW, screenH int) (x, y int) {
	x, y = w.X, w.Y
	if x < 0 {
		x = screenW - w.Width + x
	}
	if y < 0 {
		y = screenH - w.Height + y
	}
	x = clamp(x, 0, max(screenW-w.Width, 0))
	y = clamp(y, 0, max(screenH-w.Height, 0))
	return x, y
}

// LogValue implements slog.LogValuer for startup logging.
func (s *Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", s.Path),
		slog.Int("max_count", s.Window.MaxCount),
		slog.Duration("heal_interval", s.Window.HealInterval),
		slog.Bool("topmost", s.Window.Topmost),
		slog.Int("tip_max_lines", s.Tip.MaxLines),
		slog.Duration("tip_auto_close", s.Tip.AutoClose),
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeast(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
