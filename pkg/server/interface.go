/*
Package server implements msgpack IPC for the inline suggestion engine.

The server drives one suggestion session per process over stdin/stdout.
A host (the smart text-input control, an editor plugin, a test harness)
sends structured events and receives the session state it needs to draw
the suggestion popup: visibility, the ranked list, and the selected
index. Messages are processed synchronously, one event per turn, with
timing info included in responses.

# IPC

Events carry an ID the response echoes back, an event name, and the
fields that event needs:

	{"id": "ev_001", "ev": "text_changed", "buf": "please sche", "cur": 11}
	{"id": "ev_002", "ev": "arrow_down"}
	{"id": "ev_003", "ev": "accept"}

State responses follow every navigation or text event:

	{"id": "ev_001", "v": true, "s": ["schedule", "scheduled"], "sel": 0, "c": 2, "t": 110}

Accepting returns the spliced buffer and the new cursor; the host is
responsible for applying both and restoring focus:

	{"id": "ev_003", "ok": true, "w": "schedule", "buf": "please schedule ", "cur": 16}

One-shot ranking without session state uses the "rank" event with a
prefix and optional limit. "dismiss" unconditionally drops the session
to idle, and "health" answers with a status message.

Malformed or oversized events produce an error reply with a code; the
loop never crashes on bad input.
*/
package server

// EventRequest is an incoming session event from the host
type EventRequest struct {
	ID     string `msgpack:"id"`
	Event  string `msgpack:"ev"`
	Buffer string `msgpack:"buf,omitempty"` // for "text_changed"
	Cursor int    `msgpack:"cur,omitempty"` // for "text_changed"
	Prefix string `msgpack:"p,omitempty"`   // for "rank"
	Limit  int    `msgpack:"l,omitempty"`   // for "rank"
}

// StateResponse mirrors the session state the rendering layer consumes
type StateResponse struct {
	ID          string   `msgpack:"id"`
	Visible     bool     `msgpack:"v"`
	Suggestions []string `msgpack:"s"`
	Selected    int      `msgpack:"sel"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// AcceptResponse is the result of committing the selected suggestion.
// Accepted is false when the session was idle; the buffer fields are
// only meaningful when it is true.
type AcceptResponse struct {
	ID        string `msgpack:"id"`
	Accepted  bool   `msgpack:"ok"`
	Word      string `msgpack:"w,omitempty"`
	NewBuffer string `msgpack:"buf,omitempty"`
	NewCursor int    `msgpack:"cur,omitempty"`
	TimeTaken int64  `msgpack:"t"`
}

// RankResponse answers a one-shot "rank" event
type RankResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"t"`
}

// StatusResponse reports readiness and health
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// EventError holds basic error information for failed events
type EventError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
