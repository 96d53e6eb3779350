package imgur

import "strings"

// Endpoint is a composable API URL. Starting from a root, each Join appends
// one normalized path segment; the zero-allocation string form is the final
// endpoint.
type Endpoint string

// Join returns a new endpoint with segment appended. Leading and trailing
// separators are stripped from the segment and exactly one separator is kept
// between the existing content and the new segment. Joining an empty segment
// is a no-op.
func (e Endpoint) Join(segment string) Endpoint {
	seg := strings.Trim(segment, "/")
	if seg == "" {
		return e
	}
	return Endpoint(strings.TrimRight(string(e), "/") + "/" + seg)
}

// String returns the endpoint URL.
func (e Endpoint) String() string {
	return string(e)
}
