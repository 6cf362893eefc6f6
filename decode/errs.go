package decode

import "errors"

var ErrDecode = errors.New("decode error")
