// Package hub is the Home Assistant client used by the entity renamer.
//
// It covers the two remote interactions the tool needs:
//
//   - Listing: an authenticated GET of /api/states, filtered and
//     sorted into Entity records (see Client.ListEntities).
//   - Applying: a WebSocket session against /api/websocket that
//     authenticates and then issues one entity registry update per
//     planned rename, strictly request-then-response
//     (see Client.ApplyPlan).
//
// The package is deliberately not a general hub client. It exposes
// exactly the calls the renamer makes and nothing else; there is no
// reconnection, no retry, and no concurrent use of the control
// channel.
//
// # Errors
//
// A failed listing request (non-2xx) is reported through the logger
// and yields an empty result rather than an error: the caller treats
// it as "nothing found". Control-channel failures are fatal and
// surface as ErrConnectionFailed, ErrAuthFailed, or
// ErrProtocolViolation; per-item rejections by the hub are returned
// as UpdateResult entries and do not stop the run.
package hub
