package domain

// StopReason tells why a paginated run stopped fetching pages.
type StopReason string

// Stop reasons.
const (
	// StopPageLimit means the configured page cap was reached.
	StopPageLimit StopReason = "page_limit"

	// StopEmptyPage means a page came back without results.
	StopEmptyPage StopReason = "empty_page"

	// StopExhausted means every result reported upstream was fetched.
	StopExhausted StopReason = "exhausted"

	// StopSingle means the operation fetches a single document.
	StopSingle StopReason = "single"

	// StopFailed means a terminal gateway failure aborted the run.
	StopFailed StopReason = "failed"
)

// RecordFailure is a record that could not be processed.
// The run continues past it.
type RecordFailure struct {
	Page   int       `json:"page"`
	Index  int       `json:"index"`
	Error  string    `json:"error"`
	Record RawRecord `json:"record,omitempty"`
}

// RunReport summarises one enrichment run.
type RunReport struct {
	RunID     string          `json:"run_id"`
	Operation string          `json:"operation"`
	Pages     int             `json:"pages"`
	Seen      int             `json:"seen"`
	Accepted  int             `json:"accepted"`
	Rejected  int             `json:"rejected"`
	Emitted   int             `json:"emitted"`
	Failures  []RecordFailure `json:"failures,omitempty"`
	Stop      StopReason      `json:"stop"`
}
