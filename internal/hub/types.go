package hub

// Entity is one entry from the hub's state listing.
type Entity struct {
	// FriendlyName is the display name from the entity's attributes.
	// May be empty; not all entities carry one.
	FriendlyName string

	// EntityID is the unique identifier, e.g. "light.kitchen".
	EntityID string
}

// Update describes one entity registry update to send over the
// control channel. NewEntityID and FriendlyName are only included in
// the outgoing frame when non-empty; an Update with both empty still
// produces a frame carrying just the entity ID.
type Update struct {
	EntityID     string
	NewEntityID  string
	FriendlyName string
}

// UpdateResult is the per-item outcome of an applied Update.
type UpdateResult struct {
	Update

	// Success mirrors the hub's success indicator for this item.
	Success bool

	// Message is a composed description of what changed on success,
	// or the hub's error message (or "unknown error") on failure.
	Message string
}
