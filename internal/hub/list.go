package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
)

// stateEntry mirrors the fields of one /api/states item that the
// renamer cares about. Everything else in the response is ignored.
type stateEntry struct {
	EntityID   string `json:"entity_id"`
	Attributes struct {
		FriendlyName string `json:"friendly_name"`
	} `json:"attributes"`
}

// ListEntities fetches all entities from the hub's state listing.
//
// If pattern is non-nil, only entities whose ID matches it are
// retained. Matching is a search, not a full match: "switch\." keeps
// every entity whose ID contains "switch.". The result is sorted by
// friendly name, ascending, case-sensitive; entities with the same
// friendly name keep their response order.
//
// A non-2xx response is reported through the logger and yields an
// empty slice with a nil error: the caller treats it as "nothing
// found". A transport or decode failure is returned as an error.
//
// Parameters:
//   - ctx: Context for cancellation
//   - pattern: Optional filter applied to entity IDs, may be nil
//
// Returns:
//   - []Entity: Matching entities sorted by friendly name
//   - error: If the request cannot be made or the body cannot be parsed
func (c *Client) ListEntities(ctx context.Context, pattern *regexp.Regexp) ([]Entity, error) {
	endpoint := c.cfg.RESTBaseURL() + "/api/states"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing entities: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Non-fatal: report and carry on with an empty listing.
		c.logger.Error("state listing request failed",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return []Entity{}, nil
	}

	var states []stateEntry
	if err := json.Unmarshal(body, &states); err != nil {
		return nil, fmt.Errorf("listing entities: parsing response: %w", err)
	}

	entities := make([]Entity, 0, len(states))
	for _, s := range states {
		if pattern != nil && !pattern.MatchString(s.EntityID) {
			continue
		}
		entities = append(entities, Entity{
			FriendlyName: s.Attributes.FriendlyName,
			EntityID:     s.EntityID,
		})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].FriendlyName < entities[j].FriendlyName
	})

	c.logger.Debug("entities listed", "total", len(states), "matched", len(entities))

	return entities, nil
}
