package toolchain

import "errors"

var (
	ErrToolchain   = errors.New("toolchain error")
	ErrBuildFailed = errors.New("build failed")
	ErrStripFailed = errors.New("strip failed")
)
