package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Default distribution directory name, relative to the project root.
	distName = "dist"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for executable artifacts.
	DefaultBinMode os.FileMode = 0755
)

// Path to the cargo installation root.
//
// Honors $CARGO_HOME when set, falling back to the conventional ~/.cargo
// location used by rustup installations.
func CargoHome() string {
	if home := os.Getenv("CARGO_HOME"); home != "" {
		return home
	}
	return filepath.Join(xdg.Home, ".cargo")
}

// Path to the directory holding cargo-installed binaries.
//
// Toolchain binaries (cargo, rustup) typically live here when installed via
// rustup. Used as a probe fallback for hosts where ~/.cargo/bin is not on
// the search path.
func CargoBin() string {
	return filepath.Join(CargoHome(), "bin")
}

// Default distribution directory for a project root.
func Dist(root string) string {
	return filepath.Join(root, distName)
}
