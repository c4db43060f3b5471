package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hearts/internal/model"
)

func newSettingsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
	}

	cmd.AddCommand(newSettingsShowCmd(s))
	cmd.AddCommand(newSettingsMoonRuleCmd(s))
	cmd.AddCommand(newSettingsAccentCmd(s))
	cmd.AddCommand(newSettingsSaveNamesCmd(s))

	return cmd
}

func newSettingsShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.output(cmd).Print(s.board().Settings())
			return nil
		},
	}
}

func newSettingsMoonRuleCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "moon-rule <rule>",
		Short: "Choose how moon shots are scored (" + choices(model.MoonRules) + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.board().SetMoonRule(cmd.Context(), model.MoonRule(args[0])); err != nil {
				return fmt.Errorf("%w: choose one of %s", err, choices(model.MoonRules))
			}
			s.output(cmd).Print(s.board().Settings())
			return nil
		},
	}
}

func newSettingsAccentCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "accent <color>",
		Short: "Choose the accent color (" + choices(model.AccentColors) + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.board().SetAccentColor(cmd.Context(), model.AccentColor(args[0])); err != nil {
				return fmt.Errorf("%w: choose one of %s", err, choices(model.AccentColors))
			}
			s.output(cmd).Print(s.board().Settings())
			return nil
		},
	}
}

func newSettingsSaveNamesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "save-names <on|off>",
		Short: "Choose whether player names are kept between sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseToggle(args[0])
			if err != nil {
				return err
			}
			if err := s.board().SetSavePlayerNames(cmd.Context(), enabled); err != nil {
				return err
			}
			s.output(cmd).Print(s.board().Settings())
			return nil
		},
	}
}

func parseToggle(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", v)
	}
	return b, nil
}
