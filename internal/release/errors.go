package release

import "errors"

var (
	ErrBuild               = errors.New("build failed")
	ErrNoLinuxArtifact     = errors.New("Linux binary not found")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
