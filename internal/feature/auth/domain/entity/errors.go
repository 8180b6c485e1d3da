package entity

import "errors"

// ErrBlankName indicates a display name that is empty after trimming whitespace.
// Returned by User.UpdateName; the zero-value rule is enforced here so that no
// caller can persist a blank name by mistake.
var ErrBlankName = errors.New("name must not be blank")
