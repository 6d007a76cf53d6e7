package toolchain

import "strings"

// Compiler flag requesting static C-runtime linkage.
const crtStaticFlag = "-C target-feature=+crt-static"

// Returns the given RUSTFLAGS value with static C-runtime linkage appended.
//
// The prior value is preserved, never replaced, and the flag is not
// duplicated when already present. Callers read the prior value once at
// the process boundary and thread the result through explicitly.
func WithCRTStatic(rustflags string) string {
	if strings.Contains(rustflags, crtStaticFlag) {
		return rustflags
	}
	if rustflags == "" {
		return crtStaticFlag
	}
	return rustflags + " " + crtStaticFlag
}

// Joins an inherited RUSTFLAGS value with extra flags from a manifest.
//
// The inherited value always precedes the extra flags, so manifest flags
// can override it under rustc's last-flag-wins semantics. Either side may
// be empty.
func Combine(inherited, extra string) string {
	switch {
	case inherited == "":
		return extra
	case extra == "":
		return inherited
	default:
		return inherited + " " + extra
	}
}
