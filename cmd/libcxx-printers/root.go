package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/k3DW/debug/internal/autoload"
	"github.com/k3DW/debug/internal/config"
	"github.com/k3DW/debug/internal/evidence"
	"github.com/k3DW/debug/internal/fetch"
	"github.com/k3DW/debug/internal/messages"
	"github.com/k3DW/debug/internal/selector"
)

// Built-in defaults when neither a flag nor the config file provides a value.
const (
	defaultDownloadTo = "/usr/local/share/gdb/libcxx"
	defaultLibcxxSo   = "/usr/lib/x86_64-linux-gnu/libc++.so.1"
)

type rootFlags struct {
	tag         string
	branch      string
	commit      string
	downloadTo  string
	libcxxSo    string
	autoLoadDir string
	dryRun      bool
}

// Seams for tests.
var (
	fetchExecute = fetch.Execute
	loadConfig   = func() (*config.Config, error) {
		path, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		return config.Load(path)
	}
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.tag, "tag", "t", "", messages.FlagTag)
	f.StringVarP(&flags.branch, "branch", "b", "", messages.FlagBranch)
	f.StringVarP(&flags.commit, "commit", "c", "", messages.FlagCommit)
	f.StringVarP(&flags.downloadTo, "download-to", "d", "", messages.FlagDownloadTo)
	f.StringVarP(&flags.libcxxSo, "libcxx-so", "l", "", messages.FlagLibcxxSo)
	f.StringVar(&flags.autoLoadDir, "auto-load-dir", "", messages.FlagAutoLoadDir)
	f.BoolVar(&flags.dryRun, "dry-run", false, messages.FlagDryRun)
	cmd.MarkFlagsMutuallyExclusive("tag", "branch", "commit")
	cmd.AddCommand(newCheckCmd())
	return cmd
}

// runInstall is the main flow: resolve the library path, pick a selector,
// build the fetch plan, download, and wire up GDB's auto-load script.
func runInstall(cmd *cobra.Command, flags rootFlags) error {
	out := cmd.OutOrStdout()
	downloadTo, libcxxSo, autoLoadDir, err := resolvePaths(flags)
	if err != nil {
		return err
	}

	libraryPath, err := evidence.ResolvePath(evidence.RealSystem{}, libcxxSo)
	if err != nil {
		return err
	}

	resolver := selector.NewResolver(evidence.RealSystem{}, out)
	overrides := selector.Overrides{Tag: flags.tag, Branch: flags.branch, Commit: flags.commit}
	sel, err := resolver.Resolve(overrides, libraryPath)
	if err != nil {
		return err
	}

	plan := fetch.BuildPlan(sel, downloadTo, libraryPath)
	autoLoadPath := autoload.FilePath(autoLoadDir, libraryPath)
	rendered := autoload.Contents(downloadTo, plan.ModuleName())

	if flags.dryRun {
		return printDryRun(out, plan, autoLoadPath, rendered)
	}

	if isTerminal() {
		// Best-effort heads-up when an existing auto-load script is about to change.
		if preview, ok, err := autoload.PreviewOverwrite(autoLoadPath, rendered); err == nil && ok {
			_, _ = fmt.Fprintln(out, messages.AutoLoadDiffHeader)
			_, _ = fmt.Fprint(out, preview.UnifiedDiff)
		}
	}

	if err := fetchExecute(cmd.Context(), plan); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.DownloadedFmt, plan.URL)
	_, _ = fmt.Fprintf(out, messages.SavedFileFmt, plan.Destination())

	written, err := autoload.Emit(autoLoadDir, libraryPath, downloadTo, plan.ModuleName())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.WroteAutoLoadFmt, written)
	return nil
}

// printDryRun reports the plan without touching the network or writing files.
func printDryRun(out io.Writer, plan fetch.Plan, autoLoadPath string, rendered string) error {
	_, _ = fmt.Fprintf(out, messages.DryRunWouldFetchFmt, plan.URL)
	_, _ = fmt.Fprintf(out, messages.DryRunWouldSaveFmt, plan.Destination())
	_, _ = fmt.Fprintf(out, messages.DryRunWouldWriteAutoLoadFmt, autoLoadPath)
	preview, ok, err := autoload.PreviewOverwrite(autoLoadPath, rendered)
	if err != nil {
		return err
	}
	if ok {
		_, _ = fmt.Fprintln(out, messages.AutoLoadDiffHeader)
		_, _ = fmt.Fprint(out, preview.UnifiedDiff)
	}
	return nil
}

// resolvePaths applies flag > config > built-in default precedence and
// expands a leading ~ in each result.
func resolvePaths(flags rootFlags) (downloadTo string, libcxxSo string, autoLoadDir string, err error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", "", "", err
	}
	downloadTo = firstNonEmpty(flags.downloadTo, cfg.DownloadTo, defaultDownloadTo)
	libcxxSo = firstNonEmpty(flags.libcxxSo, cfg.LibcxxSo, defaultLibcxxSo)
	autoLoadDir = firstNonEmpty(flags.autoLoadDir, cfg.AutoLoadDir, autoload.DefaultRoot)
	for _, p := range []*string{&downloadTo, &libcxxSo, &autoLoadDir} {
		expanded, err := config.ExpandPath(*p)
		if err != nil {
			return "", "", "", err
		}
		*p = expanded
	}
	return downloadTo, libcxxSo, autoLoadDir, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
