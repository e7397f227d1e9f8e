package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "libcxx-printers"
	// RootShort is the short description for the root command.
	RootShort = "Download and install libc++ GDB pretty-printers"
	RootLong  = "Download and install libc++ GDB pretty-printers from 'https://github.com/llvm/llvm-project'.\n\n" +
		"Without an explicit --tag, --branch, or --commit, the printer version is derived\n" +
		"from the build metadata next to the installed libc++ shared object."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagTag         = "Download from the given tag name"
	FlagBranch      = "Download from the given branch name"
	FlagCommit      = "Download from the given commit hash"
	FlagDownloadTo  = "Where to download printers.py"
	FlagLibcxxSo    = "Location of the libc++ shared object; its version drives the download when no tag, branch, or commit is given"
	FlagAutoLoadDir = "GDB auto-load directory the loader script is written under"
	FlagDryRun      = "Resolve and print the plan without downloading or writing anything"

	// DownloadedFmt reports a completed fetch.
	DownloadedFmt    = "Successfully downloaded: '%s'\n"
	SavedFileFmt     = "...and saved file to: '%s'\n"
	WroteAutoLoadFmt = "Wrote GDB auto-load script to: '%s'\n"

	// PermissionDeniedFmt reports an unwritable destination. Printed to
	// stdout; this is a local precondition failure, not a transport error.
	PermissionDeniedFmt = "Permission denied: '%s'\n"

	// WarnVersionMismatchFmt warns that library evidence disagrees with the
	// installed package metadata. Advisory only.
	WarnVersionMismatchFmt = "Warning: %s version found to be %s, does not match installed package versions: [%s]\n"
	// WarnCrossCheckSkippedFmt warns that the package cross-check could not run.
	WarnCrossCheckSkippedFmt = "Warning: skipping package cross-check: %v\n"

	DryRunWouldFetchFmt         = "Would fetch: '%s'\n"
	DryRunWouldSaveFmt          = "Would save to: '%s'\n"
	DryRunWouldWriteAutoLoadFmt = "Would write GDB auto-load script to: '%s'\n"
	AutoLoadDiffHeader          = "Existing auto-load script differs:"

	// CheckUse is the check command name.
	CheckUse   = "check"
	CheckShort = "Compare the local libc++ version against the latest llvm-project release"

	CheckUpToDateFmt = "libc++ %s matches or is newer than the latest llvm-project release (%s)"
	CheckOutdatedFmt = "libc++ %s is older than the latest llvm-project release (%s)"
	CheckRateLimited = "GitHub API rate limit exceeded; try the check again later"
)
