package actions

import (
	"context"
	"errors"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"rardesc/common"
	"rardesc/connector"
	"rardesc/state"
)

func Merge(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("merge")

	if cmd.Args().Len() < 2 {
		return errors.New("base and override descriptors must be specified")
	}
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}
	env.Overwrite = cmd.Bool("overwrite")

	policy := env.Cfg.Merge.UntypedMatch
	if name := cmd.String("untyped"); len(name) > 0 {
		var err error
		if policy, err = common.ParseUntypedMatch(name); err != nil {
			return err
		}
	}
	return merge(env, cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2), policy, log)
}

func merge(env *state.LocalEnv, base, override, dst string, policy common.UntypedMatch, log *zap.Logger) error {
	a, _, err := load(env, base, log)
	if err != nil {
		return err
	}
	b, _, err := load(env, override, log)
	if err != nil {
		return err
	}
	log.Info("Merging descriptors", zap.String("base", base), zap.String("override", override), zap.Stringer("untyped", policy))
	result := a.Merge(b, connector.WithUntypedMatch(policy), connector.WithMergeLogger(log))
	return write(env, result, dst, env.Cfg.Render.Format, log)
}
