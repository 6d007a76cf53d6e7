// Reads the optional release.hcl manifest.
//
// The manifest lets a project pin the component name, distribution
// directory, and per-target overrides next to its sources instead of on
// the command line. Absence of the file is normal and yields an empty
// manifest.
package manifest
