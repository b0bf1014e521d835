package access

import "errors"

// ErrNotOwned is returned by OwnerResolver implementations when the target
// id does not resolve to an owner: the resource is absent or its ownership
// chain is broken. The resolver treats it as a denial.
var ErrNotOwned = errors.New("resource does not resolve to an owner")
