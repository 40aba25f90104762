package tui

import "github.com/lixenwraith/scribe/terminal"

// Theme collects the styles the widgets draw with
type Theme struct {
	Text      terminal.Style
	Selection terminal.Style
	StatusBar terminal.Style
	ScrollBar terminal.Style
	Prompt    terminal.Style
}

// DefaultTheme mirrors classic full-screen editor colors: light text
// on black, red selection, inverse status line
func DefaultTheme() Theme {
	return Theme{
		Text: terminal.Style{
			Fg: terminal.RGB{R: 192, G: 192, B: 192},
			Bg: terminal.RGBBlack,
		},
		Selection: terminal.Style{
			Fg: terminal.RGB{R: 255, G: 255, B: 255},
			Bg: terminal.RGB{R: 170, G: 0, B: 0},
		},
		StatusBar: terminal.Style{
			Fg: terminal.RGBBlack,
			Bg: terminal.RGB{R: 192, G: 192, B: 192},
		},
		ScrollBar: terminal.Style{
			Fg: terminal.RGB{R: 128, G: 128, B: 128},
			Bg: terminal.RGB{R: 32, G: 32, B: 32},
		},
		Prompt: terminal.Style{
			Fg:   terminal.RGB{R: 255, G: 255, B: 85},
			Bg:   terminal.RGBBlack,
			Attr: terminal.AttrBold,
		},
	}
}
