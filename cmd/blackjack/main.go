package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/lox/blackjack/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"Path to HCL config file" default:"blackjack.hcl" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `help:"Write logs to this file" type:"path"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play blackjack against the house"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate games with a fixed player policy"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Console blackjack against a house dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the config file and applies the global flag overrides
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	return cfg, nil
}
