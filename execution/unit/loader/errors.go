package loader

import "errors"

var ErrSchemeUnsupported = errors.New("unsupported scheme")
var ErrFormulaNotAvailable = errors.New("formula not available")
var ErrInputEmpty = errors.New("input is empty")
