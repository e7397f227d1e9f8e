package messages

// Error wrapping formats for internal operations.
const (
	// EvidenceStatFmt formats stat failures during path resolution.
	EvidenceStatFmt    = "stat %s: %w"
	EvidenceResolveFmt = "resolve %s: %w"
	EvidenceScanFmt    = "scan %s: %w"

	// PkgdbCommandFailedFmt formats package database query failures.
	PkgdbCommandFailedFmt = "run %s: %w"

	// VersionInvalidFmt formats malformed version strings.
	VersionInvalidFmt        = "version %q must be in the form X.Y.Z"
	VersionInvalidSegmentFmt = "invalid version segment %q: %w"
	VersionInvalidTagFmt     = "release tag %q does not carry a version triple"

	// FetchCreateRequestFmt formats request creation errors.
	FetchCreateRequestFmt    = "create download request: %w"
	FetchCreateDirFmt        = "create download directory %s: %w"
	FetchUnexpectedStatusFmt = "unexpected status %s"
	FetchCreateTempFileFmt   = "create temp file for %s: %w"
	FetchWriteTempFileFmt    = "write temp file for %s: %w"
	FetchChmodTempFileFmt    = "set permissions on temp file for %s: %w"
	FetchCloseTempFileFmt    = "close temp file for %s: %w"
	FetchRenameTempFileFmt   = "rename temp file for %s: %w"

	// AutoLoadCreateDirFmt formats auto-load directory creation errors.
	AutoLoadCreateDirFmt = "create auto-load directory %s: %w"
	AutoLoadWriteFmt     = "write auto-load script %s: %w"
	AutoLoadReadFmt      = "read auto-load script %s: %w"

	// ConfigResolveHomeFmt formats home directory resolution errors.
	ConfigResolveHomeFmt = "resolve home dir: %w"
	ConfigReadFmt        = "read config %s: %w"
	ConfigParseFmt       = "parse config %s: %w"
	ConfigExpandPathFmt  = "expand path %q: %w"

	// UpdateCreateRequestErrFmt formats release check request errors.
	UpdateCreateRequestErrFmt         = "create latest release request: %w"
	UpdateFetchLatestReleaseErrFmt    = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt   = "decode latest release: %w"
	UpdateLatestReleaseMissingTag     = "latest release missing tag_name"
	UpdateInvalidLatestReleaseTagFmt  = "invalid latest release tag %q: %w"
)
