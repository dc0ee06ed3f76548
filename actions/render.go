package actions

import (
	"context"
	"errors"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"rardesc/state"
)

func Render(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	env.Overwrite = cmd.Bool("overwrite")

	c, _, err := load(env, src, log)
	if err != nil {
		return err
	}
	return write(env, c, dst, outputFormat(cmd.String("format"), env.Cfg.Render.Format, log), log)
}
