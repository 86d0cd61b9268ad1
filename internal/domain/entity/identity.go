package entity

import "github.com/google/uuid"

// Identity is the opaque owner of a cart. An authenticated shopper carries the
// user id (and email, for checkout receipts); an anonymous shopper carries
// neither; their cart lives in the signed cookie the client holds.
//
// The identity is always threaded explicitly through cart and checkout calls;
// business logic never branches on how it was obtained.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Authenticated reports whether the identity belongs to a signed-in user.
func (i Identity) Authenticated() bool {
	return i.UserID != uuid.Nil
}

// AnonymousIdentity is the identity of a shopper without an account.
func AnonymousIdentity() Identity {
	return Identity{}
}

// UserIdentity builds an authenticated identity.
func UserIdentity(userID uuid.UUID, email string) Identity {
	return Identity{UserID: userID, Email: email}
}
