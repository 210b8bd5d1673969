package model

import "strconv"

// Identity is the current user as far as the client can tell. It is derived
// from the stored credential on demand and never persisted. A zero Identity
// (Valid == false) means nobody is signed in or the credential could not be
// read.
type Identity struct {
	UserID int64
	Valid  bool
}

// Anonymous is the null identity.
var Anonymous = Identity{}

// KnownUser returns a valid identity for id.
func KnownUser(id int64) Identity { return Identity{UserID: id, Valid: true} }

func (i Identity) String() string {
	if !i.Valid {
		return "anonymous"
	}
	return "user " + strconv.FormatInt(i.UserID, 10)
}
