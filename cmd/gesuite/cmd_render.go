// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mgorsk1/great-expectations/pkg/config"
	"github.com/mgorsk1/great-expectations/pkg/render"
	"github.com/mgorsk1/great-expectations/pkg/suite"
)

var (
	flagOutput      string
	flagBatchKwargs string
	flagTemplates   string
)

var renderCmd = &cobra.Command{
	Use:   "render <suite-file>",
	Short: "Render a suite file into an editable notebook",
	Long: `Reads an expectation suite (JSON or YAML) and writes a Jupyter notebook
that recreates it. The batch descriptor for the notebook header comes from
--batch-kwargs when given, otherwise from the suite's citations.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "notebook output path (default <output_dir>/edit_<suite>.ipynb)")
	renderCmd.Flags().StringVar(&flagBatchKwargs, "batch-kwargs", "", "path to a YAML/JSON file overriding the batch descriptor")
	renderCmd.Flags().StringVar(&flagTemplates, "templates", "", "custom template directory (overrides config)")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	if flagTemplates != "" {
		cfg.CustomTemplatesDir = flagTemplates
	}

	s, err := suite.Load(args[0])
	if err != nil {
		return err
	}

	var batchKwargs *suite.Dict
	if flagBatchKwargs != "" {
		batchKwargs, err = loadBatchKwargs(flagBatchKwargs)
		if err != nil {
			return err
		}
	}

	rc := cfg.RenderConfig()
	rc.Logger = log
	renderer, err := render.New(rc)
	if err != nil {
		return err
	}

	out := flagOutput
	if out == "" {
		out = defaultNotebookPath(cfg.OutputDir, s.Name)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := renderer.RenderToDisk(s, out, batchKwargs); err != nil {
		return err
	}
	fmt.Printf("Notebook written to %s\n", out)
	return nil
}

// loadBatchKwargs reads a batch descriptor mapping from a YAML/JSON file.
func loadBatchKwargs(path string) (*suite.Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch kwargs %s: %w", path, err)
	}
	d := suite.NewDict()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing batch kwargs %s: %w", path, err)
	}
	return d, nil
}

// defaultNotebookPath derives the notebook filename from the suite name.
func defaultNotebookPath(outputDir, suiteName string) string {
	return filepath.Join(outputDir, "edit_"+suiteName+".ipynb")
}
