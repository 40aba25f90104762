// Command scribe is a terminal text editor with mouse support,
// bounded undo, and minimal-diff screen updates.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/scribe/config"
	"github.com/lixenwraith/scribe/edit"
	"github.com/lixenwraith/scribe/terminal"
	"github.com/lixenwraith/scribe/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "config file path")
	logPath := flag.String("log", "", "log file path (overrides config)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	cfg := config.Load(*configPath)
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	closeLog := setupLogging(cfg)
	defer closeLog()

	if err := run(cfg, filename); err != nil {
		log.Error().Err(err).Msg("fatal")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogging routes zerolog to a file, or discards output when no
// file is configured. Stdout and stderr belong to the raw terminal.
func setupLogging(cfg *config.Config) func() {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }
}

func colorMode(cfg *config.Config) terminal.ColorMode {
	switch cfg.ColorMode {
	case "256":
		return terminal.ColorMode256
	case "truecolor":
		return terminal.ColorModeTrueColor
	}
	return terminal.DetectColorMode()
}

func run(cfg *config.Config, filename string) error {
	doc, err := edit.LoadFile(filename)
	if err != nil {
		return err
	}

	term, err := terminal.NewWithColorMode(colorMode(cfg))
	if err != nil {
		return err
	}
	if err := term.Start(); err != nil {
		return err
	}

	// Raw mode plus alternate screen makes a panic unreadable unless
	// the terminal is restored first
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset()
			log.Error().Interface("panic", r).Msg("panic")
			panic(r)
		}
	}()
	defer term.Stop()

	if cfg.Mouse {
		term.SetMouseMode(terminal.MouseModeClick | terminal.MouseModeDrag)
	}

	app := newApp(term, doc, cfg, filename)
	return app.loop()
}

// app owns the event loop and top-level chrome: editor area, scroll
// bar column, status bar row, and the quit confirmation prompt
type app struct {
	term     terminal.Terminal
	editor   *tui.Editor
	theme    tui.Theme
	filename string

	quitPrompt bool
	status     string
}

func newApp(term terminal.Terminal, doc *edit.Document, cfg *config.Config, filename string) *app {
	theme := tui.DefaultTheme()
	return &app{
		term:     term,
		filename: filename,
		theme:    theme,
		editor: tui.NewEditor(doc, tui.EditorOptions{
			TabSize:    cfg.TabSize,
			WheelLines: cfg.WheelLines,
			UndoLevels: cfg.UndoLevels,
			UndoBytes:  cfg.UndoBytes,
			Theme:      theme,
		}),
	}
}

func (a *app) loop() error {
	a.draw()
	for ev := range a.term.Events() {
		if ev.Type == terminal.EventResize {
			a.term.Screen().Resize(ev.Width, ev.Height)
			a.draw()
			continue
		}

		if a.quitPrompt {
			if a.handleQuitPrompt(ev) {
				return nil
			}
			a.draw()
			continue
		}

		if ev.Type == terminal.EventKey && ev.Key == terminal.KeyRune &&
			ev.Modifiers&terminal.ModCtrl != 0 {
			switch ev.Rune {
			case 'q':
				if !a.editor.Dirty() {
					return nil
				}
				a.quitPrompt = true
				a.draw()
				continue
			case 's':
				a.save()
				a.draw()
				continue
			}
		}

		a.editor.HandleEvent(ev)
		a.status = ""
		a.draw()
	}
	return nil
}

// handleQuitPrompt consumes events while the unsaved-changes prompt is
// up. Returns true when the app should exit.
func (a *app) handleQuitPrompt(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	switch {
	case ev.Key == terminal.KeyRune && (ev.Rune == 'y' || ev.Rune == 'Y'):
		return true
	case ev.Key == terminal.KeyRune && (ev.Rune == 'n' || ev.Rune == 'N'),
		ev.Key == terminal.KeyEscape:
		a.quitPrompt = false
	}
	return false
}

func (a *app) save() {
	a.editor.Sync()
	if err := edit.SaveFile(a.editor.Document(), a.filename); err != nil {
		log.Error().Err(err).Str("file", a.filename).Msg("save failed")
		a.status = "save failed: " + err.Error()
		return
	}
	a.editor.MarkClean()
	a.status = "saved"
}

func (a *app) draw() {
	screen := a.term.Screen()
	w, h := screen.Width(), screen.Height()
	root := tui.NewRegion(screen, 0, 0, w, h)

	a.editor.Draw(root.Sub(0, 0, w-1, h-1))

	tui.ScrollBar{
		Total:   a.editor.Document().LineCount(),
		Visible: h - 1,
		Offset:  a.editor.ScrollTop(),
	}.Draw(root.Sub(w-1, 0, 1, h-1), a.theme.ScrollBar)

	a.drawStatusBar(root.Sub(0, h-1, w, 1))

	if a.quitPrompt {
		screen.HideCursor()
	}
	if err := screen.Refresh(); err != nil {
		log.Error().Err(err).Msg("refresh failed")
	}
}

func (a *app) drawStatusBar(r tui.Region) {
	if a.quitPrompt {
		tui.StatusBar{
			Left: "Unsaved changes. Quit? (y)es or (n)o",
		}.Draw(r, a.theme.Prompt)
		return
	}

	name := a.filename
	if a.editor.Dirty() {
		name += " *"
	}
	mode := "INS"
	if a.editor.Overwrite() {
		mode = "OVR"
	}
	line, col := a.editor.CursorPos()

	tui.StatusBar{
		Left:   name,
		Center: a.status,
		Right:  fmt.Sprintf("%s  Ln %d, Col %d", mode, line+1, col+1),
	}.Draw(r, a.theme.StatusBar)
}
