// Package actions implements program subcommands. Every action takes its
// environment from context, the cli command only supplies arguments and
// flags.
package actions

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"rardesc/archive"
	"rardesc/common"
	"rardesc/connector"
	"rardesc/state"
)

// load reads descriptor from plain file or archive and parses it.
func load(env *state.LocalEnv, path string, log *zap.Logger) (*connector.Connector, *archive.Source, error) {
	src, err := archive.Open(path, env.Cfg.Archive.DescriptorPath)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load descriptor: %w", err)
	}
	env.Rpt.StoreData("source/"+filepath.Base(path)+".xml", src.Data)

	var opts []connector.ParseOption
	if env.Cfg.Parser.ResolveProperties {
		opts = append(opts, connector.WithPropertyResolver(os.LookupEnv))
	}
	c, err := connector.ParseReader(bytes.NewReader(src.Data), log, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("Descriptor loaded", zap.String("source", path), zap.Bool("archive", src.Archive), zap.Stringer("version", c.Version))
	return c, src, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// prepare makes sure dst could be written: existing files are replaced only
// when overwrite was requested, missing directories are created.
func prepare(env *state.LocalEnv, dst string, log *zap.Logger) error {
	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

// create opens destination file, empty name means STDOUT.
func create(env *state.LocalEnv, dst string, log *zap.Logger) (io.WriteCloser, error) {
	if len(dst) == 0 {
		return nopCloser{os.Stdout}, nil
	}
	if err := prepare(env, dst, log); err != nil {
		return nil, err
	}
	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("unable to create output file: %w", err)
	}
	return f, nil
}

// encode produces requested representation of c.
func encode(c *connector.Connector, format common.OutputFormat, indent int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case common.OutputFormatTree:
		buf.WriteString(c.String())
	default:
		if _, err := c.Document(indent).WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("unable to render descriptor: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// write stores c into dst (or STDOUT) and saves a copy into report.
func write(env *state.LocalEnv, c *connector.Connector, dst string, format common.OutputFormat, log *zap.Logger) error {
	data, err := encode(c, format, env.Cfg.Render.Indent)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("result"+format.Ext(), data)

	out, err := create(env, dst, log)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("unable to write result: %w", err)
	}
	return out.Close()
}

func outputFormat(name string, def common.OutputFormat, log *zap.Logger) common.OutputFormat {
	if len(name) == 0 {
		return def
	}
	format, err := common.ParseOutputFormat(name)
	if err != nil {
		log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", def))
		return def
	}
	return format
}
