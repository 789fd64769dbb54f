package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/easylsb/internal/cliconfig"
	"github.com/bft-labs/easylsb/pkg/easylsb"
	"github.com/bft-labs/easylsb/pkg/log"
)

const longHelp = `Hide a message in the least significant bits of a BMP or QOI image, and read it back.

The message is prefixed with its 16-bit length and written one bit per color
channel, row by row, red, green then blue. Messages that do not fit in the
lowest bit continue in the next bit up, so up to 8/3 bytes per pixel can be
carried at the cost of more visible changes.

Settings are read from $HOME/.easylsb/config.toml (or --config, TOML or YAML),
then EASYLSB_* environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  easylsb encode "meet at noon" cover.bmp secret.bmp
  easylsb encode --from-file notes.txt cover.qoi secret.qoi
  easylsb decode secret.bmp
  easylsb capacity cover.bmp
  easylsb watch secret.bmp
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by the subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string

	log    zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	cfg := cliconfig.DefaultConfig()
	return &app{
		cfg:    cfg,
		log:    cliconfig.Logger(cfg, stderr),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// loadConfig layers the config file, then the environment, under the flags
// the user set explicitly.
func (a *app) loadConfig(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s not found", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.Logger(a.cfg, a.stderr)
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")
	return nil
}

func (a *app) engine() (*easylsb.EasyLSB, error) {
	return easylsb.New(easylsb.Config{
		Lenient: a.cfg.Lenient,
		Force:   a.cfg.Force,
		Format:  a.cfg.Format,
	}, easylsb.WithLogger(log.NewZerologAdapterWithLogger(a.log)))
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "easylsb",
		Short:         "Hide messages in the least significant bits of bitmap images",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.easylsb/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (console or json)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newCapacityCmd(a),
		newWatchCmd(a),
	)
	return root
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error().Err(err).Msg("easylsb")
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
