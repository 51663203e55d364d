package hub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Control-channel frame types.
const (
	frameTypeAuth     = "auth"
	frameTypeAuthOK   = "auth_ok"
	frameTypeUpdate   = "config/entity_registry/update"
	unknownErrMessage = "unknown error"
)

// authFrame is the client's authentication message, sent after the
// hub's greeting frame.
type authFrame struct {
	Type        string `json:"type"`
	AccessToken string `json:"access_token"`
}

// authResult is the hub's reply to the auth frame.
type authResult struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// updateFrame is one entity registry update request. NewEntityID and
// Name are omitted from the wire format when empty; the hub treats an
// absent field as "leave unchanged".
type updateFrame struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	EntityID    string `json:"entity_id"`
	NewEntityID string `json:"new_entity_id,omitempty"`
	Name        string `json:"name,omitempty"`
}

// updateResponse is the hub's reply to an update frame.
type updateResponse struct {
	Success bool `json:"success"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ApplyPlan sends one entity registry update per Update, in order,
// over a single control-channel session.
//
// The session is strictly sequential: connect, read the hub's
// greeting, authenticate, then for each update send exactly one
// request and block for exactly one response before moving on. There
// is no pipelining, no timeout, and no retry. The connection is
// closed when ApplyPlan returns, whether or not an error occurred.
//
// A rejection of an individual update is recorded in its UpdateResult
// and does not stop the run. A transport or decode failure is fatal:
// ApplyPlan returns the results collected so far together with the
// error, and updates already applied by the hub stand.
//
// Parameters:
//   - ctx: Context used when dialling the connection
//   - updates: Updates to apply, in plan order
//
// Returns:
//   - []UpdateResult: Per-item outcomes, one per update processed
//   - error: ErrConnectionFailed, ErrAuthFailed, or ErrProtocolViolation
func (c *Client) ApplyPlan(ctx context.Context, updates []Update) ([]UpdateResult, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.cfg.WebSocketURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer conn.Close()

	// The hub speaks first with an auth-required greeting.
	_, greeting, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("%w: reading greeting: %w", ErrProtocolViolation, err)
	}
	c.logger.Debug("frame received", "frame", string(greeting))

	if err := conn.WriteJSON(authFrame{Type: frameTypeAuth, AccessToken: c.cfg.AccessToken}); err != nil {
		return nil, fmt.Errorf("%w: sending auth: %w", ErrProtocolViolation, err)
	}
	// Token deliberately not logged.
	c.logger.Debug("frame sent", "type", frameTypeAuth)

	_, rawAuth, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("%w: reading auth result: %w", ErrProtocolViolation, err)
	}
	c.logger.Debug("frame received", "frame", string(rawAuth))

	var auth authResult
	if err := json.Unmarshal(rawAuth, &auth); err != nil {
		return nil, fmt.Errorf("%w: parsing auth result: %w", ErrProtocolViolation, err)
	}
	if auth.Type != frameTypeAuthOK {
		if auth.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrAuthFailed, auth.Message)
		}
		return nil, fmt.Errorf("%w: hub answered %q", ErrAuthFailed, auth.Type)
	}

	results := make([]UpdateResult, 0, len(updates))

	for i, u := range updates {
		frame := updateFrame{
			ID:          i + 1,
			Type:        frameTypeUpdate,
			EntityID:    u.EntityID,
			NewEntityID: u.NewEntityID,
			Name:        u.FriendlyName,
		}

		if err := conn.WriteJSON(frame); err != nil {
			return results, fmt.Errorf("%w: sending update %d: %w", ErrProtocolViolation, frame.ID, err)
		}
		c.logger.Debug("frame sent",
			"id", frame.ID,
			"entity_id", frame.EntityID,
			"new_entity_id", frame.NewEntityID,
			"name", frame.Name,
		)

		// Exactly one response per request.
		_, rawResp, err := conn.ReadMessage()
		if err != nil {
			return results, fmt.Errorf("%w: reading response %d: %w", ErrProtocolViolation, frame.ID, err)
		}
		c.logger.Debug("frame received", "frame", string(rawResp))

		var resp updateResponse
		if err := json.Unmarshal(rawResp, &resp); err != nil {
			return results, fmt.Errorf("%w: parsing response %d: %w", ErrProtocolViolation, frame.ID, err)
		}

		results = append(results, UpdateResult{
			Update:  u,
			Success: resp.Success,
			Message: composeOutcome(u, resp),
		})
	}

	return results, nil
}

// composeOutcome builds the human-readable per-item message: which
// fields changed on success, or the hub's error message on failure.
func composeOutcome(u Update, resp updateResponse) string {
	if !resp.Success {
		msg := unknownErrMessage
		if resp.Error != nil && resp.Error.Message != "" {
			msg = resp.Error.Message
		}
		return fmt.Sprintf("Failed to update entity '%s': %s", u.EntityID, msg)
	}

	out := fmt.Sprintf("Entity '%s'", u.EntityID)
	if u.NewEntityID != "" {
		out += fmt.Sprintf(" renamed to '%s'", u.NewEntityID)
	}
	if u.FriendlyName != "" {
		out += fmt.Sprintf(" with friendly name '%s'", u.FriendlyName)
	}
	return out + " successfully!"
}
