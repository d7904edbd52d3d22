/*
Package server implements msgpack IPC for spelling correction services.

The server package provides a minimal interface for word correction using
msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports correction requests,
dictionary management ops and health checks. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message
contains an ID field and other fields based on the operation type.

Correction requests use mainly this structure:

	{"id": "req_001", "w": "helo", "l": 5}

The server responds with candidates ranked by edit distance, ties broken
alphabetically:

	{"id": "req_001", "s": [{"w": "hell", "d": 1}, {"w": "hello", "d": 1}], "c": 2, "t": 145}

A query that is already spelled correctly comes back with no candidates and
the exact flag set; a query with nothing within tolerance comes back with an
empty candidate list. Neither is an error.

Dict management enables runtime adjustment of the loaded word set when the
server was started from a chunk directory:

	{"id": "dict_001", "action": "set_size", "chunks": 5}
	{"id": "dict_002", "action": "get_info"}

Response structures include status information and error details when an op
fails.
*/
package server

// Request is an incoming IPC message. An empty Action means a correction
// request for Word; otherwise Action selects a management op.
type Request struct {
	ID     string `msgpack:"id"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
	Action string `msgpack:"action,omitempty"` // "health", "get_info", "set_size"
	Chunks *int   `msgpack:"chunks,omitempty"` // for "set_size"
}

// ResponseCandidate - minimal candidate in a correction response.
type ResponseCandidate struct {
	Word     string `msgpack:"w"`
	Distance int    `msgpack:"d"`
}

// SuggestResponse - correction response. TimeTaken is in microseconds.
type SuggestResponse struct {
	ID         string              `msgpack:"id"`
	Candidates []ResponseCandidate `msgpack:"s"`
	Count      int                 `msgpack:"c"`
	Exact      bool                `msgpack:"x,omitempty"`
	TimeTaken  int64               `msgpack:"t"`
}

// DictionaryResponse - dictionary operation response.
type DictionaryResponse struct {
	ID              string `msgpack:"id"`
	Status          string `msgpack:"status"`
	Error           string `msgpack:"error,omitempty"`
	TotalWords      int    `msgpack:"total_words,omitempty"`
	LoadedChunks    int    `msgpack:"loaded_chunks,omitempty"`
	AvailableChunks int    `msgpack:"available_chunks,omitempty"`
}

// StatusResponse - generic status message (ready/ok).
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
