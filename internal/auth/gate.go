package auth

import "github.com/gossipboard/gossip-client/internal/model"

// CanMutate reports whether id may be offered edit and delete controls for
// r. The null identity never may. This is a UX decision only; see the
// package comment.
func CanMutate(id model.Identity, r model.Owned) bool {
	return id.Valid && id.UserID == r.OwnerID()
}
