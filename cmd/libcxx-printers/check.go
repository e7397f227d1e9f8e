package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/k3DW/debug/internal/config"
	"github.com/k3DW/debug/internal/evidence"
	"github.com/k3DW/debug/internal/messages"
	"github.com/k3DW/debug/internal/update"
)

var checkRelease = update.Check

func newCheckCmd() *cobra.Command {
	var libcxxSo string
	cmd := &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			so, err := config.ExpandPath(firstNonEmpty(libcxxSo, cfg.LibcxxSo, defaultLibcxxSo))
			if err != nil {
				return err
			}
			libraryPath, err := evidence.ResolvePath(evidence.RealSystem{}, so)
			if err != nil {
				return err
			}
			libraryVersion, err := evidence.LibraryVersion(evidence.RealSystem{}, libraryPath)
			if err != nil {
				return err
			}
			result, err := checkRelease(cmd.Context(), libraryVersion)
			if update.IsRateLimitError(err) {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.CheckRateLimited))
				return nil
			}
			if err != nil {
				return err
			}
			if result.Outdated {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.CheckOutdatedFmt, result.Library, result.Latest))
				return nil
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.CheckUpToDateFmt, result.Library, result.Latest))
			return nil
		},
	}
	cmd.Flags().StringVarP(&libcxxSo, "libcxx-so", "l", "", messages.FlagLibcxxSo)
	return cmd
}
