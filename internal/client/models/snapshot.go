package models

// Snapshot is the whole-database export shape: one JSON object keyed by
// store name. Singleton stores appear as one-element arrays of their
// decrypted plaintext; collection stores as full plaintext arrays. Import
// consumes the identical shape.
type Snapshot struct {
	User     []UserInfo `json:"user"`
	Settings []Settings `json:"settings"`
	Entries  []Entry    `json:"entries"`
	Goals    []Goal     `json:"goals"`
}
