package release

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rtxlauncher/relkit/internal/target"
	"github.com/rtxlauncher/relkit/internal/toolchain"
)

// Simulates the external toolchain for pipeline tests.
//
// Successful cargo invocations write the expected output file, mimicking a
// real build. Strip invocations exit with stripExit. Every invocation is
// recorded for assertions.
type fakeToolchain struct {
	t         *testing.T
	root      string
	component string

	staticOK  bool // Whether the musl-target build produces an output.
	defaultOK bool // Whether the host-default build produces an output.
	windowsOK bool // Whether the Windows-target build produces an output.
	stripExit int  // Exit code for strip invocations.

	calls []toolchain.Command
}

func (f *fakeToolchain) Run(_ context.Context, cmd toolchain.Command) (*toolchain.Result, error) {
	f.calls = append(f.calls, cmd)

	switch cmd.Name {
	case "rustup":
		return &toolchain.Result{}, nil
	case "cargo":
		return f.build(cmd)
	default: // strippers
		return &toolchain.Result{ExitCode: f.stripExit}, nil
	}
}

func (f *fakeToolchain) build(cmd toolchain.Command) (*toolchain.Result, error) {
	switch triple := argAfter(cmd.Args, "--target"); triple {
	case target.Linux.Triple:
		if f.staticOK {
			f.writeOutput(target.Linux.Output(f.root, f.component), "static build")
			return &toolchain.Result{}, nil
		}
	case target.Windows.Triple:
		if f.windowsOK {
			f.writeOutput(target.Windows.Output(f.root, f.component), "windows build")
			return &toolchain.Result{}, nil
		}
	case "":
		if f.defaultOK {
			f.writeOutput(target.Linux.DefaultOutput(f.root, f.component), "default build")
			return &toolchain.Result{}, nil
		}
	}

	return &toolchain.Result{ExitCode: 101}, nil
}

func (f *fakeToolchain) writeOutput(path, content string) {
	f.t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		f.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		f.t.Fatal(err)
	}
}

// Returns the cargo invocations that targeted the given triple; "" matches
// host-default builds.
func (f *fakeToolchain) cargoCalls(triple string) []toolchain.Command {
	var out []toolchain.Command
	for _, call := range f.calls {
		if call.Name == "cargo" && argAfter(call.Args, "--target") == triple {
			out = append(out, call)
		}
	}
	return out
}

// Returns the argument following the given flag, or "".
func argAfter(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// Builds Options wired to a fake toolchain with every probe answering absent.
func testOptions(t *testing.T, fake *fakeToolchain) Options {
	t.Helper()
	fake.t = t
	return Options{
		Component: fake.component,
		Root:      fake.root,
		Dist:      filepath.Join(fake.root, "dist"),
		Runner:    fake,
		Probe: func(string) toolchain.Presence {
			return toolchain.ToolAbsent
		},
	}
}

func TestRunNoLinuxArtifactFails(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app"}

	_, err := Run(context.Background(), testOptions(t, fake))
	if !errors.Is(err, ErrNoLinuxArtifact) {
		t.Fatalf("error = %v, want ErrNoLinuxArtifact", err)
	}
	if !strings.Contains(err.Error(), "Linux binary not found") {
		t.Errorf("error message %q does not name the missing Linux binary", err)
	}
}

func TestRunPrefersStaticOutput(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true}

	// A stale default-target output must lose to the fresh static one.
	fake.t = t
	fake.writeOutput(target.Linux.DefaultOutput(fake.root, fake.component), "default build")

	result, err := Run(context.Background(), testOptions(t, fake))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(result.Linux)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "static build" {
		t.Errorf("artifact content = %q, want the static build", data)
	}
}

func TestRunFallbackToDefaultTarget(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", defaultOK: true}

	result, err := Run(context.Background(), testOptions(t, fake))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := filepath.Base(result.Linux); got != "app-linux-x86_64" {
		t.Errorf("artifact name = %q, want app-linux-x86_64", got)
	}

	data, err := os.ReadFile(result.Linux)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "default build" {
		t.Errorf("artifact content = %q, want the default build", data)
	}
}

func TestRunWindowsRustflagsAppended(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true, windowsOK: true}

	opts := testOptions(t, fake)
	opts.RustFlags = "-C opt-level=3"

	result, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Windows == "" {
		t.Fatal("expected a Windows artifact")
	}

	winCalls := fake.cargoCalls(target.Windows.Triple)
	if len(winCalls) != 1 {
		t.Fatalf("got %d Windows builds, want 1", len(winCalls))
	}
	wantEnv := []string{"RUSTFLAGS=-C opt-level=3 -C target-feature=+crt-static"}
	if !slices.Equal(winCalls[0].Env, wantEnv) {
		t.Errorf("windows env = %v, want %v", winCalls[0].Env, wantEnv)
	}

	// The Linux build must not see the linkage flag.
	linuxCalls := fake.cargoCalls(target.Linux.Triple)
	if len(linuxCalls) != 1 || len(linuxCalls[0].Env) != 0 {
		t.Errorf("linux build env = %v, want none", linuxCalls)
	}
}

func TestRunWindowsArtifactName(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true, windowsOK: true}

	result, err := Run(context.Background(), testOptions(t, fake))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := filepath.Base(result.Windows); got != "app-windows-x86_64.exe" {
		t.Errorf("artifact name = %q, want app-windows-x86_64.exe", got)
	}
}

func TestRunStripFailureTolerated(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true, stripExit: 1}

	opts := testOptions(t, fake)
	opts.Strip = true
	opts.Probe = func(string) toolchain.Presence {
		return toolchain.ToolPresent
	}

	if _, err := Run(context.Background(), opts); err != nil {
		t.Fatalf("strip failure changed the run outcome: %v", err)
	}
}

func TestRunSkipWindows(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true, windowsOK: true}

	opts := testOptions(t, fake)
	opts.SkipWindows = true

	result, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Windows != "" {
		t.Errorf("Windows artifact produced despite skip: %q", result.Windows)
	}
	if calls := fake.cargoCalls(target.Windows.Triple); len(calls) != 0 {
		t.Errorf("got %d Windows builds, want 0", len(calls))
	}
}

// The end-to-end degraded scenario: static Linux build succeeds, the
// Windows build fails with no cross compiler present. The run must succeed
// with exactly one artifact in the distribution directory.
func TestRunWindowsFailureTolerated(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true}

	opts := testOptions(t, fake)
	result, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Windows != "" {
		t.Errorf("Windows artifact reported despite failed build: %q", result.Windows)
	}

	entries, err := os.ReadDir(opts.Dist)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("dist holds %d entries, want 1", len(entries))
	}
	if got := entries[0].Name(); got != "app-linux-x86_64" {
		t.Errorf("dist entry = %q, want app-linux-x86_64", got)
	}
}

// A hermetic builder that fails must fall back to the host build without
// weakening the pipeline's outcome.
func TestRunHermeticFallback(t *testing.T) {
	fake := &fakeToolchain{root: t.TempDir(), component: "app", staticOK: true}

	opts := testOptions(t, fake)
	opts.Hermetic = failingHermetic{}

	result, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Linux == "" {
		t.Fatal("expected a Linux artifact from the host fallback")
	}
	if calls := fake.cargoCalls(target.Linux.Triple); len(calls) != 1 {
		t.Errorf("got %d host static builds, want 1", len(calls))
	}
}

type failingHermetic struct{}

func (failingHermetic) Build(context.Context, string, string, string) error {
	return errors.New("no containerd")
}
