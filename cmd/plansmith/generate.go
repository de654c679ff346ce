package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/reignorshine/plansmith/internal/coach"
	"github.com/reignorshine/plansmith/internal/plan"
	"github.com/reignorshine/plansmith/internal/tui"
)

type generateOptions struct {
	IntakePath     string
	NonInteractive bool
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <intake.json>",
		Short: "Generate a training plan from athlete intake data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions{
				IntakePath:     args[0],
				NonInteractive: !term.IsTerminal(int(os.Stdout.Fd())),
			}
			return generateCmdRunner(cmd, root, opts)
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts generateOptions) error {
	log, err := newLogger(root)
	if err != nil {
		return err
	}

	settings, err := loadSettings(root)
	if err != nil {
		return err
	}

	intake, warnings, err := plan.LoadIntake(opts.IntakePath)
	if err != nil {
		return err
	}
	for _, section := range warnings {
		log.WithField("section", section).Warn("intake section missing")
	}

	client, err := coach.NewClient(settings)
	if err != nil {
		return err
	}

	generator := coach.NewGenerator(client, settings.Directories.Plans, log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if opts.NonInteractive {
		result, err := generator.Generate(ctx, intake)
		if err != nil {
			return err
		}
		reportGeneration(cmd, result)
		return nil
	}

	program := tea.NewProgram(tui.NewModel("generating training plan"))

	var result *coach.Result
	go func() {
		var genErr error
		result, genErr = generator.Generate(ctx, intake)
		program.Send(tui.DoneMsg{Err: genErr, Path: pathOf(result)})
	}()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	m := finalModel.(tui.Model)
	if m.Cancelled() {
		cancel()
		return fmt.Errorf("generation cancelled")
	}
	if m.Err() != nil {
		return m.Err()
	}

	reportGeneration(cmd, result)
	return nil
}

func reportGeneration(cmd *cobra.Command, result *coach.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Plan saved: %s\n", result.Path)
	if result.ValidationErr != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Warning: plan failed validation, review before rendering: %v\n", result.ValidationErr)
	}
}

func pathOf(result *coach.Result) string {
	if result == nil {
		return ""
	}
	return result.Path
}
