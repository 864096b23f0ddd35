package models

// User is a registered participant. Identity arrives from the gateway as an
// opaque numeric id in the X-Sharer-User-Id header; no credentials are
// stored here.
type User struct {
	ID    int64  `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// UserCreate is the payload for registering a user.
type UserCreate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUpdate is the patch payload; nil fields are left unchanged.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
