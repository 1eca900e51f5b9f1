package models

import "time"

// LocalSession is the authenticated-session state the client persists
// between runs: the bearer token and the identity derived from it.
type LocalSession struct {
	Token    string    `json:"token"`
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	SavedAt  time.Time `json:"saved_at"`
}

// TableName returns the name of the database table
// associated with the [LocalSession] model.
func (s LocalSession) TableName() string {
	return "session"
}
