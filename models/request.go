package models

import "time"

// ItemRequest is a wish posted by a user for an item nobody has listed yet.
// Owners may answer it by listing an item with RequestID set.
type ItemRequest struct {
	ID          int64     `bson:"id" json:"id"`
	Description string    `bson:"description" json:"description"`
	RequestorID int64     `bson:"requestor_id" json:"requestorId"`
	Created     time.Time `bson:"created" json:"created"`
}

// RequestCreate is the payload for posting an item request.
type RequestCreate struct {
	Description string `json:"description"`
}

// RequestAnswer is a compact view of an item listed in answer to a request.
type RequestAnswer struct {
	ItemID  int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

// RequestView is a request together with the items answering it.
type RequestView struct {
	ItemRequest
	Items []RequestAnswer `json:"items"`
}
