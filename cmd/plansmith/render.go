package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/render"
)

type renderOptions struct {
	PlanPath   string
	OutputPath string
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <plan.json> [output.pdf]",
		Short: "Render a training plan into a styled PDF",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := renderOptions{PlanPath: args[0]}
			if len(args) > 1 {
				opts.OutputPath = args[1]
			}
			return renderCmdRunner(cmd, root, opts)
		},
	}

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	log, err := newLogger(root)
	if err != nil {
		return err
	}

	settings, err := loadSettings(root)
	if err != nil {
		return err
	}

	p, err := plan.Load(opts.PlanPath)
	if err != nil {
		return err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = render.DefaultOutputPath(settings.Directories.Output, p, time.Now())
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	pages, err := render.New(log).Render(p, outputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "PDF written: %s (%d pages)\n", outputPath, pages)
	return nil
}
