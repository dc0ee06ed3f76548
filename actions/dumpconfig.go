package actions

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"rardesc/config"
	"rardesc/state"
)

// DumpConfig outputs either default or actual configuration.
func DumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	// configuration dump always replaces destination
	env.Overwrite = true
	return dumpConfig(env, cmd.Args().Get(0), cmd.Bool("default"))
}

func dumpConfig(env *state.LocalEnv, fname string, def bool) error {
	var (
		err  error
		data []byte
		kind string
	)
	if def {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	out, err := create(env, fname, env.Log)
	if err != nil {
		return err
	}
	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return out.Close()
}
