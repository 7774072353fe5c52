// Command typebox-codegen compiles a schema model file into Valibot
// validator source.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/glucoseinc/typebox-codegen/internal/codegen"
	"github.com/glucoseinc/typebox-codegen/internal/config"
	"github.com/glucoseinc/typebox-codegen/internal/diagnostic"
	"github.com/glucoseinc/typebox-codegen/internal/dialect"
	"github.com/glucoseinc/typebox-codegen/internal/schema"
)

const version = "0.1.0-dev"

func main() {
	app := &cli.App{
		Name:    "typebox-codegen",
		Usage:   "compile a schema model to Valibot validators",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a typebox-codegen config file (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "path to the schema model JSON file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "output grammar version: 0.30 or 1",
			},
			&cli.BoolFlag{
				Name:  "exact-optional",
				Usage: "use the exact-optional property combinator",
			},
			&cli.StringSliceFlag{
				Name:  "recursive",
				Usage: "schema names requiring lazy self-reference handling",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress warning diagnostics",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: generate,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func generate(c *cli.Context) error {
	if c.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if v := c.String("model"); v != "" {
		cfg.Model = v
	}
	if v := c.String("output"); v != "" {
		cfg.Output = v
	}
	if v := c.String("dialect"); v != "" {
		cfg.Dialect = v
	}
	if c.Bool("exact-optional") {
		cfg.ExactOptional = true
	}
	if v := c.StringSlice("recursive"); len(v) > 0 {
		cfg.Recursive = v
	}
	if c.Bool("quiet") {
		cfg.Quiet = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to read model %q: %w", cfg.Model, err)
	}
	model, err := schema.DecodeModel(data)
	if err != nil {
		return err
	}
	logrus.Debugf("loaded model with %d top-level schemas", len(model))

	diags := diagnostic.NewCollector(cfg.Quiet)
	out, err := codegen.Generate(model, codegen.Options{
		Version:        dialect.Version(cfg.Dialect),
		ExactOptional:  cfg.ExactOptional,
		RecursiveNames: cfg.Recursive,
		Diags:          diags,
	})
	if err != nil {
		return err
	}

	// The collector formats severity and category itself; dump it as-is so
	// generated output on stdout stays clean.
	if dump := diags.FormatAll(); dump != "" {
		fmt.Fprint(os.Stderr, dump)
	}
	if n := diags.WarningCount(); n > 0 {
		logrus.Infof("generated with %s, output is lower fidelity than input", diags.Summary())
	}

	if cfg.Output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output %q: %w", cfg.Output, err)
	}
	logrus.Infof("wrote %s", cfg.Output)
	return nil
}
