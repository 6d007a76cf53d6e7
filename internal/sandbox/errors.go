package sandbox

import "errors"

var (
	ErrSandbox     = errors.New("sandbox error")
	ErrBuildFailed = errors.New("sandboxed build failed")
)
