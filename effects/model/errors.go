package effectmodel

import "errors"

// ErrUnrecognizedCategory is raised when an effect tree has a top-level key
// other than "actions" or "mutations".
var ErrUnrecognizedCategory = errors.New("unrecognized effect section")
