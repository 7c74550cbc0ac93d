package priority

import "errors"

var (
	// ErrDuplicateElement is returned by Insert when the element is already held.
	// Use UpdatePriority to move a held element instead.
	ErrDuplicateElement = errors.New("priority: element already present")
)
