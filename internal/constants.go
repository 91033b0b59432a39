package internal

const (
	PathSeparator = "." // Separator between path segments

	MaxMergeDepth   = 100  // Recursion guard for recursive merges
	MaxEncodeDepth  = 1000 // Recursion guard for the encoder
	MaxLoggedPath   = 100  // Paths longer than this are truncated in logs
	MaxLoggedErrLen = 200  // Error messages longer than this are truncated in logs
)
