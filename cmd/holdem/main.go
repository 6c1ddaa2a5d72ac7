package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Simulate    SimulateCmd      `cmd:"" help:"Play random hands on the configured tables"`
	CheckConfig CheckConfigCmd   `cmd:"check-config" help:"Validate an HCL table configuration"`
	Inspect     InspectCmd       `cmd:"" help:"Restore a table snapshot and print it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("No-limit hold'em rules engine tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
