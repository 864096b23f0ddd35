package models

// Item is a thing an owner lists for borrowing. Available gates new
// bookings at creation time only.
type Item struct {
	ID          int64  `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Available   *bool  `bson:"available" json:"available"`
	OwnerID     int64  `bson:"owner_id" json:"ownerId"`
	RequestID   int64  `bson:"request_id,omitempty" json:"requestId,omitempty"`
}

// IsAvailable reports whether the item is currently listed as available.
func (i Item) IsAvailable() bool {
	return i.Available != nil && *i.Available
}

// ItemCreate is the payload for listing a new item.
type ItemCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   int64  `json:"requestId,omitempty"`
}

// ItemUpdate is the patch payload; nil fields are left unchanged.
type ItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemView is an item with its comments, as returned to non-owners.
type ItemView struct {
	Item
	Comments []Comment `json:"comments"`
}

// ItemOwnerView is the projection returned to an item's owner: the item
// plus last/next approved booking summaries and all comments.
type ItemOwnerView struct {
	Item
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
	Comments    []Comment     `json:"comments"`
}
