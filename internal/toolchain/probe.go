package toolchain

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rtxlauncher/relkit/internal/paths"
)

// Availability of an external tool on the host.
type Presence string

const (
	// The tool was found and is executable.
	ToolPresent Presence = "present"

	// The tool was not found on the search path.
	ToolAbsent Presence = "absent"

	// The probe itself failed; availability could not be determined.
	ToolUnknown Presence = "unknown"
)

// Checks whether a tool is available on the host.
//
// The search path is consulted first. When the tool is not on the path,
// the cargo bin directory is checked as a fallback, since rustup-installed
// hosts do not always export ~/.cargo/bin. Only a definitive not-found
// answer maps to [ToolAbsent]; any other probe failure is [ToolUnknown].
func Probe(name string) Presence {
	_, err := exec.LookPath(name)
	if err == nil {
		return ToolPresent
	}
	if !errors.Is(err, exec.ErrNotFound) {
		return ToolUnknown
	}

	info, statErr := os.Stat(filepath.Join(paths.CargoBin(), name))
	if statErr == nil && !info.IsDir() && info.Mode()&0111 != 0 {
		return ToolPresent
	}
	if statErr == nil || os.IsNotExist(statErr) {
		return ToolAbsent
	}

	return ToolUnknown
}
