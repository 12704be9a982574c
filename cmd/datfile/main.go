// The datfile command inspects and rewrites DAT files.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/xidats/dats/internal/config"

	_ "github.com/xidats/dats/event"
	_ "github.com/xidats/dats/zone"
)

const description = `Reads event DAT files and zone data DAT files.

The dump command decodes each INPUT and writes its text form. The pack command
reads the text form of a file and writes the binary form. Decoded zone chunks
are packed from their decrypted body; their model and mmb fields are not read
by pack. The decrypt command
writes the decrypted body of each zone model and MMB chunk of a zone data file.

Settings are read from the file named by --config, if it exists. Flags take
precedence over the config file. Warnings and errors are written to stderr.`

// tool holds the state shared by the commands of a run.
type tool struct {
	cfg    config.Tool
	logger *slog.Logger
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *cli.App {
	t := &tool{stderr: stderr}
	app := &cli.App{
		Name:        "datfile",
		Writer:      stdout,
		ErrWriter:   stderr,
		Usage:       "inspect and rewrite DAT files",
		Description: description,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config `FILE`",
				Value:   "datfile.yaml",
				EnvVars: []string{"DATFILE_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of debug, info, warn, error",
			},
		},
		Before: t.setup,
	}
	app.Commands = []*cli.Command{
		{
			Name:      "dump",
			Usage:     "decode files to YAML or JSON",
			ArgsUsage: "INPUT...",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "decode as the named format instead of detecting it"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "text format, yaml or json"},
				&cli.PathFlag{Name: "out-dir", Usage: "write one text file per input into `DIR` instead of stdout"},
				&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "number of files decoded at once"},
				&cli.BoolFlag{Name: "raw-series", Usage: "keep event series as raw bytes"},
			},
			Action: t.dump,
		},
		{
			Name:      "pack",
			Usage:     "encode the text form of a file",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "event", Usage: "format of the input"},
				&cli.BoolFlag{Name: "recompute-sizes", Usage: "recompute event block sizes"},
			},
			Action: t.pack,
		},
		{
			Name:      "decrypt",
			Usage:     "write decrypted zone chunk bodies",
			ArgsUsage: "INPUT...",
			Flags: []cli.Flag{
				&cli.PathFlag{Name: "out-dir", Required: true, Usage: "output `DIR`"},
				&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "number of files decrypted at once"},
			},
			Action: t.decrypt,
		},
		{
			Name:   "formats",
			Usage:  "list registered formats",
			Action: t.formats,
		},
	}
	return app
}

// setup loads the config file and configures logging.
func (t *tool) setup(c *cli.Context) error {
	cfg, err := config.LoadTool(c.Path("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	t.cfg = cfg
	t.logger = slog.New(slog.NewTextHandler(t.stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	t.logger.Debug("config loaded", "output", cfg.Output, "workers", cfg.Workers)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
