package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/filerelay/filerelay-dock/internal/platform"
)

// DefaultFileName is looked up next to the executable.
const DefaultFileName = "config.toml"

// DefaultPath returns the config path beside the running executable, or the
// bare file name when the executable location is unknown.
func DefaultPath() string {
	dir, err := platform.ExecutableDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(dir, DefaultFileName)
}

// EnsureDefaultFile writes the commented default configuration to path when
// nothing exists there yet. It reports whether a file was written.
func EnsureDefaultFile(path string) (bool, error) {
	if platform.FileExists(path) {
		return false, nil
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(DefaultFileContent()); err != nil {
		return false, fmt.Errorf("write config %s: %w", path, err)
	}
	return true, nil
}

// DefaultFileContent renders the default configuration with explanatory comments.
func DefaultFileContent() string {
	return fmt.Sprintf(`# FileRelay Dock configuration
# x/y accept negative values: x = -20 places the dock 20px from the right edge,
# y = -60 places it 60px from the bottom edge.
# Drop files to replace the list; hold Ctrl while dropping to append.
# Right-click shows the list; Ctrl + right-click quits.

[window]
x = %d
y = %d
w = %d
h = %d
topmost = %d
max_count = %d          # 1..%d
heal_interval_ms = %d   # 0 disables the keep-visible timer
show_single_tip = %d    # 1 shows a notice when a second copy is started
language = %q     # system, en, zh, ru

[style]
bg = %q
fg = %q
font_size = %d
font_name = %q
# layered = 0
# alpha = 255
# colorkey = 0
# colorkey_rgb = %q

[tip]
w = %d
min_h = %d
max_lines = %d          # the last line becomes "...and N more files" when exceeded
max_h = %d              # 0 derives the height cap from max_lines
font_size = %d
margin = %d
auto_close_ms = %d      # 0 keeps the preview open
click_through = %d
`,
		DefaultX, DefaultY, DefaultWidth, DefaultHeight, boolInt(DefaultTopmost),
		DefaultMaxCount, DefaultMaxCount, DefaultHealInterval, boolInt(DefaultShowSingleTip), DefaultLanguage,
		DefaultBackground, DefaultForeground, DefaultFontSize, DefaultFontName, DefaultColorKey,
		DefaultTipWidth, DefaultTipMinHeight, DefaultTipMaxLines, DefaultTipMaxHeight,
		DefaultTipFontSize, DefaultTipMargin, DefaultTipAutoClose, boolInt(DefaultTipClickThrough),
	)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
