package types

// Issue is a single rule violation found during a scan. Line is
// 1-based; 0 means the issue applies to the whole file rather than a
// specific line (currently only the brace-balance check).
type Issue struct {
	Scanner string `json:"scanner"` // e.g., "javascript"
	Rule    string `json:"rule"`    // e.g., "no_console_log"
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Details string `json:"details"`
}
