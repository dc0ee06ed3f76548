package actions

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rardesc/state"
)

func Extract(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() < 2 {
		return errors.New("archives and destination directory must be specified")
	}
	env.Overwrite = cmd.Bool("overwrite")
	args := cmd.Args().Slice()
	return extract(ctx, env, args[:len(args)-1], args[len(args)-1], env.Log.Named("extract"))
}

// extract saves descriptor of every archive into dst directory. Files are
// named after module name when descriptor declares one.
func extract(ctx context.Context, env *state.LocalEnv, archives []string, dst string, log *zap.Logger) error {
	var errs error
	for _, a := range archives {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, err := extractOne(env, a, dst, log)
		if err != nil {
			log.Error("Unable to extract descriptor", zap.String("archive", a), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", a, err))
			continue
		}
		log.Info("Descriptor extracted", zap.String("archive", a), zap.String("file", name))
	}
	return errs
}

func extractOne(env *state.LocalEnv, path, dst string, log *zap.Logger) (string, error) {
	c, src, err := load(env, path, log)
	if err != nil {
		return "", err
	}
	if !src.Archive {
		return "", errors.New("not an archive")
	}

	base := c.ModuleName.String()
	if len(base) == 0 {
		base = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name := filepath.Join(dst, env.Cfg.Archive.OutputName(base, ".xml"))

	out, err := create(env, name, log)
	if err != nil {
		return "", err
	}
	// descriptor is saved as is, render command produces canonical form
	if _, err := out.Write(src.Data); err != nil {
		out.Close()
		return "", fmt.Errorf("unable to write descriptor: %w", err)
	}
	return name, out.Close()
}
