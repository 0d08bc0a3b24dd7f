package dgshdetect

import "errors"

// ErrEmptyFile reports a candidate file with no bytes to inspect.
var ErrEmptyFile = errors.New("dgshdetect: empty file")
