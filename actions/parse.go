package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"rardesc/connector"
	"rardesc/state"
)

func Parse(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	return parse(env, src, cmd.Bool("ids"), os.Stdout, log)
}

func parse(env *state.LocalEnv, src string, ids bool, out io.Writer, log *zap.Logger) error {
	c, _, err := load(env, src, log)
	if err != nil {
		return err
	}

	fields := []zap.Field{zap.Stringer("version", c.Version), zap.String("module", c.ModuleName.String())}
	if d, ok := connector.BestText(c.Descriptions, env.Cfg.Parser.Tags()...); ok {
		fields = append(fields, zap.String("description", d.Value))
	}
	log.Info("Descriptor parsed", fields...)

	var b strings.Builder
	b.WriteString(c.String())
	if ids {
		idx := c.IDIndex()
		b.WriteString("IDs:\n")
		for _, id := range idx.IDs() {
			fmt.Fprintf(&b, "  %s: %s\n", id, strings.Join(idx[id], ", "))
		}
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}
