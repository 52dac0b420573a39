package model

// Status describes what a run did to a host document.
type Status string

const (
	// StatusUpdated means the host document was rewritten.
	StatusUpdated Status = "updated"
	// StatusUnchanged means the spliced document matched the host, so no write happened.
	StatusUnchanged Status = "unchanged"
	// StatusUpToDate is reported by check mode when the host already embeds the asset.
	StatusUpToDate Status = "up-to-date"
	// StatusStale is reported by check mode when the host needs to be regenerated.
	StatusStale Status = "stale"
)

// RunResult reports the outcome of embedding one target.
type RunResult struct {
	Target    string
	Asset     Path
	Host      Path
	ByteCount int
	LineCount int
	Status    Status
}
