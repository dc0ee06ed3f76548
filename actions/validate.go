package actions

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rardesc/state"
)

func Validate(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no input source has been specified")
	}
	return validate(ctx, env, cmd.Args().Slice(), env.Log.Named("validate"))
}

// validate checks every source and reports all failures at once.
func validate(ctx context.Context, env *state.LocalEnv, sources []string, log *zap.Logger) error {
	var errs error
	failed := 0
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := validateOne(env, src, log)
		if err != nil {
			failed++
			log.Error("Descriptor is invalid", zap.String("source", src), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		log.Info("Descriptor is valid", zap.String("source", src))
	}
	if errs != nil {
		return fmt.Errorf("%d of %d descriptors failed validation: %w", failed, len(sources), errs)
	}
	return nil
}

func validateOne(env *state.LocalEnv, src string, log *zap.Logger) error {
	c, _, err := load(env, src, log)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	return nil
}
