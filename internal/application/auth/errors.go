package auth

import "errors"

var (
	// ErrInvalidSession covers missing, expired, and deactivated tokens;
	// callers cannot distinguish the three.
	ErrInvalidSession = errors.New("session is invalid")

	// ErrRenewalAddressMismatch rejects a renewal attempted from an IP other
	// than the one the session was created with.
	ErrRenewalAddressMismatch = errors.New("renewal refused: address does not match session")

	// ErrInvalidCredentials covers unknown users and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid name or password")

	// ErrNameTaken reports a signup against an existing user name.
	ErrNameTaken = errors.New("user name is already taken")
)
