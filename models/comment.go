package models

import "time"

// Comment is feedback left on an item by a user who completed an approved
// booking for it.
type Comment struct {
	ID         int64     `bson:"id" json:"id"`
	ItemID     int64     `bson:"item_id" json:"-"`
	AuthorID   int64     `bson:"author_id" json:"-"`
	AuthorName string    `bson:"author_name" json:"authorName"`
	Text       string    `bson:"text" json:"text"`
	Created    time.Time `bson:"created" json:"created"`
}

// CommentCreate is the payload for adding a comment.
type CommentCreate struct {
	Text string `json:"text"`
}
