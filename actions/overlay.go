package actions

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"rardesc/archive"
	"rardesc/common"
	"rardesc/connector"
	"rardesc/overlay"
	"rardesc/state"
)

func Overlay(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("overlay")

	if cmd.Args().Len() < 2 {
		return errors.New("descriptor and overlay must be specified")
	}
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}
	env.Overwrite = cmd.Bool("overwrite")
	return applyOverlay(env, cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2), cmd.Bool("patch"), log)
}

func loadOverlay(env *state.LocalEnv, src, ovPath string, log *zap.Logger) (*connector.Connector, *archive.Source, *overlay.Result, error) {
	c, source, err := load(env, src, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := env.Rpt.StoreCopy("overlay", ovPath); err != nil {
		log.Warn("Unable to store overlay in report", zap.Error(err))
	}
	ov, err := overlay.LoadFile(ovPath)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := ov.Apply(c, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to apply overlay: %w", err)
	}
	return c, source, res, nil
}

// applyOverlay writes descriptor with overlay applied. With patch set and
// archive source the archive itself (or its copy at dst) gets new descriptor.
func applyOverlay(env *state.LocalEnv, src, ovPath, dst string, patch bool, log *zap.Logger) error {
	c, source, res, err := loadOverlay(env, src, ovPath, log)
	if err != nil {
		return err
	}
	if len(res.Unknown) > 0 {
		log.Warn("Some overlay entries were not used", zap.Strings("entries", res.Unknown))
	}

	if !patch || !source.Archive {
		if patch {
			log.Warn("Source is not an archive, nothing to patch", zap.String("source", src))
		}
		return write(env, c, dst, common.OutputFormatXml, log)
	}

	if len(dst) == 0 {
		dst = src
	} else if err := prepare(env, dst, log); err != nil {
		return err
	}
	data, err := encode(c, common.OutputFormatXml, env.Cfg.Render.Indent)
	if err != nil {
		return err
	}
	if err := archive.Rewrite(src, dst, env.Cfg.Archive.DescriptorPath, data, env.Cfg.Archive.FixZip); err != nil {
		return err
	}
	log.Info("Archive patched", zap.String("archive", dst), zap.Stringer("revision", res.Revision), zap.Int("changed", len(res.Changed)))
	return nil
}

func Watch(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("watch")

	if cmd.Args().Len() < 2 {
		return errors.New("descriptor and overlay must be specified")
	}
	return watch(ctx, env, cmd.Args().Get(0), cmd.Args().Get(1), log)
}

// watch keeps descriptor with overlay applied in memory until ctx is done.
func watch(ctx context.Context, env *state.LocalEnv, src, ovPath string, log *zap.Logger) error {
	c, _, res, err := loadOverlay(env, src, ovPath, log)
	if err != nil {
		return err
	}
	log.Info("Watching overlay, interrupt to stop", zap.String("overlay", ovPath), zap.Stringer("revision", res.Revision))
	log.Debug("Current descriptor", zap.Stringer("tree", c))

	return overlay.Watch(ctx, ovPath, c, env.Cfg.Overlay.Debounce, log, func(res *overlay.Result) {
		log.Info("Overlay reapplied", zap.Stringer("revision", res.Revision), zap.Strings("changed", res.Changed))
		log.Debug("Current descriptor", zap.Stringer("tree", c))
	})
}
