// Command dailybread reads Bible passages from Bible Gateway or a local
// verse database, imports verse text, and serves passages over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

const version = "1.0.0"

// CLI defines the command-line interface for dailybread.
type CLI struct {
	Globals

	Read     ReadCmd     `cmd:"" default:"withargs" help:"Read passages (default command)"`
	Book     BookCmd     `cmd:"" help:"Show information about a book"`
	Versions VersionsCmd `cmd:"" help:"List supported versions"`
	Votd     VotdCmd     `cmd:"" help:"Print the verse of the day"`
	Import   ImportCmd   `cmd:"" help:"Import verse text into the local database"`
	Export   ExportCmd   `cmd:"" help:"Export a version from the local database as TSV"`
	Serve    ServeCmd    `cmd:"" help:"Start the REST and WebSocket API server"`
	About    AboutCmd    `cmd:"" help:"Print program version information"`
}

// Globals are flags shared by every command. Set flags win over the
// environment and the config file.
type Globals struct {
	Config    string `name:"config" short:"c" help:"Config file path (default: dailybread.yaml or the user config dir)" type:"path"`
	Source    string `name:"source" help:"Content source: gateway or sqlite"`
	DB        string `name:"db" help:"Verse database path" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" help:"Log format: text or json"`

	logOutput io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dailybread:", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := CLI{Globals: Globals{logOutput: stderr}}
	parser, err := kong.New(&cli,
		kong.Name("dailybread"),
		kong.Description("Daily Bread - read Bible passages from the command line"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&cli.Globals)
}
