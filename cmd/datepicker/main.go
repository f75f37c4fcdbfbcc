// Package main is the entry point for the datepicker TUI and API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/datepicker-tui/internal/calendar"
	"github.com/hy4ri/datepicker-tui/internal/config"
	"github.com/hy4ri/datepicker-tui/internal/server"
	"github.com/hy4ri/datepicker-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `datepicker - Terminal calendar date picker with Vim keybindings

USAGE:
    datepicker [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config PATH       Read configuration from PATH
    --date YYYY-MM-DD   Preselect a date
    --open              Start with the calendar open
    --format DATE       Print DATE in the configured format and exit
    --parse TEXT        Print TEXT as YYYY-MM-DD and exit
    --serve             Run the JSON HTTP API instead of the TUI
    --addr ADDR         Listen address for --serve (default from config)
    --set-token TOKEN   Store the API bearer token in the system keyring
    --clear-token       Remove the stored API bearer token

The picked date is printed as YYYY-MM-DD on exit.

CONFIGURATION:
    Config file: ~/.config/datepicker-tui/config.yaml
    Run 'datepicker --init' to create a commented template.

KEYBINDINGS:
    Field:
        Tab/Ctrl+o      Open calendar
        Enter           Apply typed date
        F1              Show help
        Ctrl+c          Quit

    Calendar:
        ←/→ h/l         Previous/next day
        ↑/↓ k/j         Previous/next week
        Home/End 0/$    First/last day of week
        PgUp/PgDn b/w   Previous/next month
        Ctrl+PgUp/PgDn  Previous/next year (B/W)
        [ ]             Show previous/next month
        m               Choose month/year (↑/↓ change, ←/→ switch, Enter done)
        t               Today
        Enter/Space     Pick
        Esc             Close
        y/Y             Copy date / ISO date
        ?               Show help
        q               Quit

    hjkl, 0 ^ $ and b w B W need ui.vim_mode (on by default); with it off
    only the arrow, Home/End and page keys navigate the calendar.

For more information, see: https://github.com/hy4ri/datepicker-tui
`

const configTemplate = `# datepicker configuration
# Location: ~/.config/datepicker-tui/config.yaml

picker:
  # Directives: %d %-d %m %-m %B %b %Y %y
  format: "%Y-%m-%d"
  # 0 = Sunday, 1 = Monday, ...
  first_day_of_week: 1
  day_name_length: 2
  # "absolute" keeps the day of month, "relative" keeps the weekday
  jump: absolute
  locale: en
  allow_weekends: true
  # min: "2022-01-01"
  # max: "2022-12-31"
  # disallow: ["2022-12-25"]
  text:
    # underflow: "Pick a date on or after %s"
    # overflow: "Pick a date on or before %s"
    previous_month: Previous month
    next_month: Next month
    today: Today
    choose_date: Choose Date
    change_date: Change Date

ui:
  # Enable Vim-style keybindings (default: true). Turning this off removes
  # hjkl, 0 ^ $ and b w B W; arrows, Home/End and the page keys remain.
  vim_mode: true
  copy_on_select: false
  notify_on_select: false
  # locales_file: ~/.config/datepicker-tui/locales.yaml
  # debug_log: /tmp/datepicker.log

server:
  addr: ":8080"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		dateFlag    string
		openPicker  bool
		formatDate  string
		parseText   string
		serve       bool
		addr        string
		setToken    string
		clearToken  bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.StringVar(&dateFlag, "date", "", "Preselected date")
	flag.BoolVar(&openPicker, "open", false, "Start with the calendar open")
	flag.StringVar(&formatDate, "format", "", "Format an ISO date and exit")
	flag.StringVar(&parseText, "parse", "", "Parse text and exit")
	flag.BoolVar(&serve, "serve", false, "Run the HTTP API")
	flag.StringVar(&addr, "addr", "", "HTTP listen address")
	flag.StringVar(&setToken, "set-token", "", "Store the API token")
	flag.BoolVar(&clearToken, "clear-token", false, "Remove the API token")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	switch {
	case showHelp:
		fmt.Print(helpText)
		return nil
	case showVersion:
		fmt.Printf("datepicker version %s\n", version)
		return nil
	case initConfig:
		return createConfigTemplate()
	case setToken != "":
		if err := config.SaveToken(setToken); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		fmt.Println("Token saved.")
		return nil
	case clearToken:
		if err := config.ClearToken(); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		fmt.Println("Token removed.")
		return nil
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch {
	case formatDate != "":
		return printFormatted(cfg, formatDate)
	case parseText != "":
		return printParsed(cfg, parseText)
	case serve:
		if addr == "" {
			addr = cfg.Server.Addr
		}
		return runServer(cfg, addr)
	}

	var initial calendar.Date
	if dateFlag != "" {
		initial, err = calendar.Parse(dateFlag)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}
	return runApp(cfg, initial, openPicker)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

func printFormatted(cfg *config.Config, iso string) error {
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	text := layout.FormatISO(iso)
	if text == "" {
		return fmt.Errorf("%q is not a valid YYYY-MM-DD date", iso)
	}
	fmt.Println(text)
	return nil
}

func printParsed(cfg *config.Config, text string) error {
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	d, err := layout.Parse(text)
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

// runServer serves the HTTP API until interrupted.
func runServer(cfg *config.Config, addr string) error {
	token, err := config.GetToken()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "Warning: no API token configured, /api is open")
	}

	srv, err := server.New(server.Options{Config: cfg, Token: token})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return srv.Listen(ctx, addr)
}

// runApp starts the TUI and prints the picked date.
func runApp(cfg *config.Config, initial calendar.Date, open bool) error {
	statePath, err := config.StatePath()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.Options{
		Config:    cfg,
		StatePath: statePath,
		Initial:   initial,
		Open:      open,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if d := app.Selected(); !d.IsZero() {
		fmt.Println(d)
	}
	return nil
}
