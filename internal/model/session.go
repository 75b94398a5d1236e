package model

import "time"

// Session represents one logged-in smartCARS client instance as stored in
// the `sessions` table. The session id is an opaque token generated by the
// client and echoed back on every authenticated action. There is no expiry
// column: a session stays valid until a renewal or a fresh login deletes it.
//
// Fields:
//  ID        – primary key identifier.
//  SessionID – opaque token supplied by the client.
//  Timestamp – when the session row was created (UTC).
type Session struct {
	ID        int64     // sessions.id
	SessionID string    // sessions.sessionid
	Timestamp time.Time // sessions.timestamp
}
