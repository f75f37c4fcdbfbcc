// Package tui provides the terminal date picker application.
package tui

import (
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/config"
	"github.com/hy4ri/datepicker-tui/internal/format"
	"github.com/hy4ri/datepicker-tui/internal/picker"
	"github.com/hy4ri/datepicker-tui/internal/tui/components"
)

// Focus is the widget receiving keys.
type Focus int

const (
	FocusField Focus = iota
	FocusPicker
)

// Options configure NewApp.
type Options struct {
	Config *config.Config
	Clock  calendar.Clock

	// StatePath is where the selection is persisted. Empty disables it.
	StatePath string

	// Initial preselects a date, overriding the persisted one.
	Initial calendar.Date

	// Open shows the popup immediately.
	Open bool
}

// App is the main Bubble Tea model for the application.
type App struct {
	cfg    *config.Config
	layout format.Layout
	ctrl   *picker.Controller

	field    *components.FieldModel
	popup    *components.PickerModel
	helpComp *components.HelpModel
	help     help.Model
	keymap   Keymap
	keys     bindings

	focus     Focus
	showHelp  bool
	statusMsg string
	statusErr bool
	width     int
	height    int

	statePath string
	debugLog  *log.Logger
	logFile   *os.File

	copyFn   func(string) error
	notifyFn func(title, message string) error
}

// NewApp creates a new App instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	pickerOpts, err := cfg.PickerOptions(opts.Clock)
	if err != nil {
		return nil, err
	}
	names, err := cfg.Names()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		layout:    layout,
		help:      help.New(),
		keymap:    DefaultKeymap(),
		statePath: opts.StatePath,
		copyFn:    clipboard.WriteAll,
		notifyFn: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}

	if cfg.UI.DebugLog != "" {
		f, err := os.OpenFile(cfg.UI.DebugLog, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("failed to open debug log: %w", err)
		}
		a.logFile = f
		a.debugLog = log.New(f, "PICKER: ", log.Ltime|log.Lshortfile)
	}
	for _, w := range cfg.Warnings() {
		a.logf("config warning: %s", w)
	}

	pickerOpts.OnSelect = func(d calendar.Date) {
		a.logf("picked %s from the calendar", d)
	}
	a.ctrl = picker.New(pickerOpts)

	text := cfg.Text()
	field := picker.NewField(layout, pickerOpts.Policy, text)
	a.field = components.NewField(field, "Date")

	pickerKeys := components.DefaultPickerKeymap(cfg.UI.VimMode)
	a.popup = components.NewPicker(a.ctrl, components.PickerConfig{
		Names:         names,
		Locale:        cfg.Picker.Locale,
		DayNameLength: cfg.Picker.DayNameLength,
		Text:          text,
		Keys:          pickerKeys,
	})

	a.keys = bindings{app: a.keymap, picker: pickerKeys, field: a.field.Bindings()}
	a.helpComp = components.NewHelp(a.keys.helpSections()...)

	initial := opts.Initial
	if initial.IsZero() && a.statePath != "" {
		st, err := config.LoadState(a.statePath)
		if err != nil {
			a.logf("failed to load state: %v", err)
		} else {
			initial = st.Selected
		}
	}
	if !initial.IsZero() {
		a.field.SetDate(initial)
		a.ctrl.SetSelected(initial)
	}

	a.field.Focus()
	if opts.Open {
		a.openPicker()
	}
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.field.Init()
}

// Selected returns the committed date, zero when none.
func (a *App) Selected() calendar.Date {
	return a.field.Field().Value()
}

// Controller returns the navigation controller.
func (a *App) Controller() *picker.Controller { return a.ctrl }

// Focus returns the widget that has keyboard focus.
func (a *App) Focus() Focus { return a.focus }

// Close releases the debug log.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

func (a *App) logf(msg string, args ...any) {
	if a.debugLog != nil {
		a.debugLog.Printf(msg, args...)
	}
}

func (a *App) openPicker() {
	a.ctrl.Open(a.field.Field().Value())
	a.focus = FocusPicker
	a.keys.pickerOpen = true
	a.field.Blur()
	a.popup.Focus()
	a.logf("opened on %s", a.ctrl.Focused())
}

func (a *App) focusField() {
	a.focus = FocusField
	a.keys.pickerOpen = false
	a.popup.Blur()
	a.field.Focus()
}
