// Command toolcheck evaluates measurements against configured levels and
// reports the verdict as a monitoring plugin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atc0005/go-nagios"
	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/config"
	"github.com/jonwraymond/toolcheck/observe"
	"github.com/jonwraymond/toolcheck/report"
)

// version is set at build time.
var version = "dev"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	format     string

	cfg      *config.Config
	checks   *config.Checks
	buildErr error
	obs      observe.Observer
	mw       *observe.Middleware
	logger   observe.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := a.rootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "UNKNOWN - "+err.Error())
		os.Exit(nagios.StateUNKNOWNExitCode)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "toolcheck",
		Short:         "Evaluate measurements against warning and critical levels",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "toolcheck.yaml", "path to the YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug|info|warn|error)")
	flags.StringVarP(&a.format, "format", "o", string(report.FormatNagios), "output format (nagios|json|table)")

	root.AddCommand(a.certCommand(), a.evalCommand(), a.serveCommand())
	return root
}

// setup loads configuration and telemetry.
func (a *app) setup(ctx context.Context) error {
	if _, err := report.ParseFormat(a.format); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Observe.Logging.Enabled = true
		cfg.Observe.Logging.Level = a.logLevel
	}
	cfg.Observe.Version = version
	a.cfg = cfg

	obs, err := observe.NewObserver(ctx, cfg.Observe)
	if err != nil {
		return fmt.Errorf("observe: %w", err)
	}
	a.obs = obs
	a.logger = obs.Logger()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return err
	}
	a.mw = mw

	// Dimensions that failed to build are reported; the rest stay usable.
	a.checks, a.buildErr = cfg.Build()
	if a.buildErr != nil {
		a.logger.Warn(ctx, "configuration has invalid levels", observe.Field{Key: "error", Value: a.buildErr.Error()})
	}
	return nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.obs == nil {
		return nil
	}
	return a.obs.Shutdown(ctx)
}

// evaluate runs fn through the telemetry middleware. An evaluation error is
// reported as an UNKNOWN entry.
func (a *app) evaluate(ctx context.Context, meta observe.CheckMeta, fn observe.EvaluateFunc) check.Collection {
	coll, err := a.mw.Wrap(fn)(ctx, meta)
	if err != nil {
		return check.NewCollection(check.Unknown(check.NewSummary(err.Error())))
	}
	return coll
}

// emit writes coll in the selected format and exits with its state.
func (a *app) emit(ctx context.Context, coll check.Collection) error {
	// os.Exit below skips PersistentPostRunE.
	if err := a.shutdown(context.WithoutCancel(ctx)); err != nil {
		a.logger.Error(ctx, "telemetry shutdown failed", observe.Field{Key: "error", Value: err.Error()})
	}

	format, _ := report.ParseFormat(a.format)
	if format == report.FormatNagios {
		p, err := report.Plugin(coll)
		if err != nil {
			return err
		}
		if a.buildErr != nil {
			p.AddError(a.buildErr)
		}
		p.ReturnCheckResults()
		return nil
	}

	f := report.NewFormatter(format, os.Stdout)
	f.SetTitle("toolcheck")
	if err := f.Render(coll); err != nil {
		return err
	}
	os.Exit(coll.State().ExitCode())
	return nil
}
