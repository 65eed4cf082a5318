package models

import "time"

// UserInfo is the encrypted "user" singleton. The salt inside is redundant
// with the cleartext copy in the metadata store and exists only so an export
// is self-contained.
type UserInfo struct {
	Salt      string    `json:"salt"`
	CreatedAt time.Time `json:"createdAt"`
}
