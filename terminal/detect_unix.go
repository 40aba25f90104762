//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"strings"
)

// DetectColorMode inspects the environment for true color support.
// COLORTERM is the reliable signal; a handful of TERM values imply it.
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	termEnv := os.Getenv("TERM")
	switch {
	case strings.Contains(termEnv, "direct"),
		strings.HasPrefix(termEnv, "iterm"),
		strings.HasPrefix(termEnv, "kitty"),
		strings.HasPrefix(termEnv, "alacritty"),
		strings.HasPrefix(termEnv, "wezterm"):
		return ColorModeTrueColor
	}

	return ColorMode256
}
