package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rardesc/actions"
	"rardesc/common"
	"rardesc/config"
	"rardesc/misc"
	"rardesc/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData("config/"+filepath.Base(configFile), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if er := env.Rpt.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Errors from subcommands are regular errors, logged once here and turned
// into exit code in main.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Cfg != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

const sourceHelp = `
SOURCE:
    path to resource adapter descriptor (ra.xml) or to resource adapter
    archive (.rar); archives are recognized by content and descriptor is
    taken from "archive.descriptor_path" entry (META-INF/ra.xml by default)
`

func overwriteFlag() cli.Flag {
	return &cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"}
}

func main() {
	// watch runs until interrupted, the rest of commands check context between
	// sources
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "inspection and processing tool for resource adapter (JCA) deployment descriptors",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:               "parse",
				Usage:              "Parses descriptor and prints its structure",
				OnUsageError:       usageErrorHandler,
				Action:             actions.Parse,
				ArgsUsage:          "SOURCE",
				Flags:              []cli.Flag{&cli.BoolFlag{Name: "ids", Usage: "list element ids with their locations"}},
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
			},
			{
				Name:               "validate",
				Usage:              "Checks that descriptors define usable resource adapters",
				OnUsageError:       usageErrorHandler,
				Action:             actions.Validate,
				ArgsUsage:          "SOURCE...",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
			},
			{
				Name:         "render",
				Usage:        "Writes descriptor in canonical form",
				OnUsageError: usageErrorHandler,
				Action:       actions.Render,
				ArgsUsage:    "SOURCE [DESTINATION]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Usage: "output `TYPE` (supported types: " + strings.Join(common.OutputFormatNames(), ", ") + "), configured one if absent"},
					overwriteFlag(),
				},
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + `
DESTINATION:
    file name to write result to, if absent - STDOUT
`,
			},
			{
				Name:         "merge",
				Usage:        "Merges override descriptor into base one",
				OnUsageError: usageErrorHandler,
				Action:       actions.Merge,
				ArgsUsage:    "BASE OVERRIDE [DESTINATION]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "untyped", Usage: "matching `POLICY` for connection definitions without factory class (" + strings.Join(common.UntypedMatchNames(), ", ") + ")"},
					overwriteFlag(),
				},
				CustomHelpTemplate: cli.CommandHelpTemplate + `
BASE, OVERRIDE:
    descriptors or archives (see SOURCE in "parse" help), values present in
    BASE win, lists are united

DESTINATION:
    file name to write merged descriptor to, if absent - STDOUT
`,
			},
			{
				Name:         "overlay",
				Usage:        "Applies deployment overlay (YAML) to descriptor",
				OnUsageError: usageErrorHandler,
				Action:       actions.Overlay,
				ArgsUsage:    "SOURCE OVERLAY [DESTINATION]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "patch", Usage: "when SOURCE is an archive write resulting descriptor into archive (DESTINATION or SOURCE itself)"},
					overwriteFlag(),
				},
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
			},
			{
				Name:               "watch",
				Usage:              "Applies overlay and reapplies it every time overlay file changes",
				OnUsageError:       usageErrorHandler,
				Action:             actions.Watch,
				ArgsUsage:          "SOURCE OVERLAY",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
			},
			{
				Name:         "extract",
				Usage:        "Extracts descriptors from resource adapter archives",
				OnUsageError: usageErrorHandler,
				Action:       actions.Extract,
				ArgsUsage:    "ARCHIVE... DESTINATION",
				Flags:        []cli.Flag{overwriteFlag()},
				CustomHelpTemplate: cli.CommandHelpTemplate + `
DESTINATION:
    directory to put descriptors to, file names are derived from module name
    or archive name
`,
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       actions.DumpConfig,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: cli.CommandHelpTemplate + `
DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`,
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
