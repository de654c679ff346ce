package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reignorshine/plansmith/internal/notify"
	"github.com/reignorshine/plansmith/internal/plan"
)

type notifyOptions struct {
	IntakePath string
}

var notifyCmdRunner = runNotify

func newNotifyCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify <intake.json>",
		Short: "Email the athlete when their plan and PDF are ready",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return notifyCmdRunner(cmd, root, notifyOptions{IntakePath: args[0]})
		},
	}

	return cmd
}

func runNotify(cmd *cobra.Command, root *rootFlags, opts notifyOptions) error {
	log, err := newLogger(root)
	if err != nil {
		return err
	}

	settings, err := loadSettings(root)
	if err != nil {
		return err
	}

	intake, _, err := plan.LoadIntake(opts.IntakePath)
	if err != nil {
		return err
	}

	// Missing prerequisites skip the notification rather than failing the
	// pipeline around it.
	if intake.Email == "" {
		log.Warn("no email address in intake, cannot send notification")
		return nil
	}

	artifacts, err := notify.Locate(settings.Directories.Plans, settings.Directories.Output, intake)
	if err != nil {
		return err
	}
	if artifacts.Empty() {
		log.Warn("no generated files found, skipping notification")
		return nil
	}

	links := notify.NewLinkBuilder(settings.Notify, ".")
	subject, body := notify.BuildEmail(intake, artifacts, links)

	sender, err := notify.NewSender(settings.SMTP, log)
	if err != nil {
		log.Error(err, "smtp not configured, skipping notification")
		return nil
	}

	if err := sender.Send(cmd.Context(), intake.Email, subject, body); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Notification sent to %s\n", intake.Email)
	return nil
}
