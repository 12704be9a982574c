package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/urfave/cli/v2"
	"github.com/xidats/dats"
	"github.com/xidats/dats/event"
	"github.com/xidats/dats/internal/config"
	"github.com/xidats/dats/zone"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func (t *tool) dump(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("dump: no input files")
	}
	cfg := t.cfg
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("raw-series") {
		cfg.RawSeries = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	var forced dats.Format
	if name := c.String("format"); name != "" {
		f, ok := dats.FormatByName(name)
		if !ok {
			return fmt.Errorf("unknown format %q", name)
		}
		forced = f
	}
	outDir := c.Path("out-dir")
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	texts := make([][]byte, len(paths))
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := t.dumpFile(cfg, forced, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if outDir != "" {
				out := filepath.Join(outDir, filepath.Base(path)+"."+cfg.Output)
				return os.WriteFile(out, text, 0o644)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if outDir != "" {
		return nil
	}

	w := c.App.Writer
	for i, text := range texts {
		if len(paths) > 1 && cfg.Output == config.OutputYAML {
			fmt.Fprintf(w, "--- # %s\n", paths[i])
		}
		if _, err := w.Write(text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// dumpFile decodes the file at path and returns its text form.
func (t *tool) dumpFile(cfg config.Tool, f dats.Format, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if f == nil {
		if f, err = detect(cfg, b); err != nil {
			return nil, err
		}
	}
	logger := t.logger.With("file", path, "format", f.Name())

	var v interface{}
	if f.Name() == event.FormatName && cfg.RawSeries {
		file, _, err := event.Decoder{Logger: logger, RawSeries: true}.Decode(b)
		if err != nil {
			return nil, err
		}
		v = file
	} else {
		// Warnings are logged by the decoder.
		if v, _, err = f.Decode(b, logger); err != nil {
			return nil, err
		}
	}
	logger.Debug("decoded", "size", len(b), "digest", dats.Digest(b))
	return render(cfg.Output, v)
}

// detect returns the format of b, looking only at the formats named by cfg
// when it names any.
func detect(cfg config.Tool, b []byte) (dats.Format, error) {
	if len(cfg.Formats) == 0 {
		f, ok := dats.Detect(b)
		if !ok {
			return nil, fmt.Errorf("unrecognized format")
		}
		return f, nil
	}
	for _, name := range cfg.Formats {
		f, ok := dats.FormatByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		if f.Check(b) == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("not any of %s", strings.Join(cfg.Formats, ", "))
}

func render(output string, v interface{}) ([]byte, error) {
	if output == config.OutputJSON {
		b, err := json.MarshalIndent(v, "", "\t")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return yaml.Marshal(v)
}

func (t *tool) pack(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return errors.New("pack: expected INPUT and OUTPUT")
	}
	input, output := c.Args().Get(0), c.Args().Get(1)
	name := c.String("format")
	f, ok := dats.FormatByName(name)
	if !ok {
		return fmt.Errorf("unknown format %q", name)
	}

	text, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	// JSON is read as YAML.
	v := f.New()
	if err := yaml.Unmarshal(text, v); err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	var b []byte
	if file, ok := v.(*event.File); ok && c.Bool("recompute-sizes") {
		b, err = event.Encoder{RecomputeBlockSizes: true}.Encode(file)
	} else {
		b, err = f.Encode(v)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", input, err)
	}
	if err := os.WriteFile(output, b, 0o644); err != nil {
		return err
	}
	t.logger.Info("packed", "input", input, "output", output, "format", name, "size", len(b))
	return nil
}

func (t *tool) decrypt(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return errors.New("decrypt: no input files")
	}
	workers := t.cfg.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	if workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}
	outDir := c.Path("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(workers)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := t.decryptFile(path, outDir); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// decryptFile writes the decrypted body of every enciphered chunk of the
// zone data file at path into outDir.
func (t *tool) decryptFile(path, outDir string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	logger := t.logger.With("file", path)
	ct, _, err := zone.Decoder{Logger: logger, NoDecode: true}.Decode(b)
	if err != nil {
		return err
	}

	base := filepath.Base(path)
	var written int
	for i, ch := range ct.Chunks {
		if ch.Type != zone.TypeModel && ch.Type != zone.TypeMMB {
			continue
		}
		body := append([]byte(nil), ch.Data...)
		if err := zone.Decrypt(ch.Type, body); err != nil {
			logger.Warn("skipping chunk", "index", i, "tag", ch.Tag, "err", err)
			continue
		}
		name := fmt.Sprintf("%s.%03d.%s.bin", base, i, fileSafe(ch.Tag))
		if err := os.WriteFile(filepath.Join(outDir, name), body, 0o644); err != nil {
			return err
		}
		written++
	}
	logger.Info("decrypted", "chunks", len(ct.Chunks), "written", written)
	return nil
}

// fileSafe replaces characters of s that may not be valid in a file name.
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, s)
}

func (t *tool) formats(c *cli.Context) error {
	for _, f := range dats.Formats() {
		fmt.Fprintln(c.App.Writer, f.Name())
	}
	return nil
}
