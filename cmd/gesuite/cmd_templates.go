// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgorsk1/great-expectations/pkg/config"
	"github.com/mgorsk1/great-expectations/pkg/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List notebook templates and where each resolves from",
	Long: `Lists every logical template the renderer uses, annotated with the source
that wins the lookup (custom directory or built-in default) and its size.
Useful for checking that a custom template directory shadows what you think
it shadows.`,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&flagTemplatesDir, "templates", "", "custom template directory (overrides config)")
}

var flagTemplatesDir string

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	if flagTemplatesDir != "" {
		cfg.CustomTemplatesDir = flagTemplatesDir
	}

	renderer, err := render.New(cfg.RenderConfig())
	if err != nil {
		return err
	}

	total := 0
	infos := renderer.Templates().List()
	for _, info := range infos {
		total += info.Bytes
		fmt.Printf("%-9s  %-34s  %5dB\n", "("+info.Source+")", info.Name, info.Bytes)
	}
	fmt.Printf("\n%d templates, %dB\n", len(infos), total)
	return nil
}
