package permits

import "errors"

var ErrPermitNotFound = errors.New("permit type not found")
