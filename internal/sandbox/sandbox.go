package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/containerd/v2/pkg/cio"
	"github.com/containerd/containerd/v2/pkg/oci"
	"github.com/containerd/errdefs"
	"github.com/containerd/platforms"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

const (

	// Default containerd socket address.
	defaultAddress = "/run/containerd/containerd.sock"

	// Namespace scoping all containerd resources created by relkit.
	namespace = "relkit"

	// Builder image providing a musl-native Rust toolchain.
	builderImage = "docker.io/library/rust:alpine"

	// Snapshotter used for the builder filesystem. fuse-overlayfs provides
	// overlay semantics without requiring root privileges (no mount(2)),
	// allowing relkit to run as a regular user.
	snapshotter = "fuse-overlayfs"

	// OCI runtime shim for the builder container.
	ociRuntime = "io.containerd.runc.v2"

	// Container ID of the builder. One builder exists at a time; reruns
	// replace any stale instance.
	builderID = "relkit-builder"

	// Path the project workspace is bind mounted at inside the builder.
	workdir = "/work"
)

// Runs cargo builds inside a containerd-backed container.
type Builder struct {
	client *containerd.Client // Containerd client for image and container operations.
}

// Creates a builder connected to the containerd socket at the given
// address. An empty address uses the system default socket.
//
// The builder must be closed when no longer needed.
func New(address string) (*Builder, error) {
	if address == "" {
		address = defaultAddress
	}

	client, err := containerd.New(address, containerd.WithDefaultNamespace(namespace))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSandbox, err)
	}

	return &Builder{client: client}, nil
}

// Closes the containerd client connection.
func (b *Builder) Close() error {
	return b.client.Close()
}

// Builds a workspace package for the given triple inside the builder
// container.
//
// The builder image is pulled for the host platform, the workspace is
// bind mounted read-write at a fixed path, and cargo runs as the
// container's primary process with output streamed to the operator. The
// build output lands in the workspace's target directory through the
// mount. The container and its snapshot are removed when the build
// completes, successful or not.
func (b *Builder) Build(ctx context.Context, root, component, triple string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSandbox, err)
	}

	slog.Info("building in sandbox", "image", builderImage, "root", absRoot, "triple", triple)

	image, err := b.pullBuilder(ctx)
	if err != nil {
		return fmt.Errorf("%w: pulling %s: %w", ErrSandbox, builderImage, err)
	}

	b.removeStale(ctx)

	ctr, err := b.createBuilder(ctx, image, absRoot, component, triple)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSandbox, err)
	}
	defer ctr.Delete(ctx, containerd.WithSnapshotCleanup)

	code, err := b.runToCompletion(ctx, ctr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSandbox, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: cargo exited with code %d", ErrBuildFailed, code)
	}

	return nil
}

// Pulls the builder image for the host platform and unpacks it into the
// snapshotter.
func (b *Builder) pullBuilder(ctx context.Context) (containerd.Image, error) {
	return b.client.Pull(ctx, builderImage,
		containerd.WithPullUnpack,
		containerd.WithPullSnapshotter(snapshotter),
		containerd.WithPlatformMatcher(platforms.Only(platforms.DefaultSpec())),
	)
}

// Creates the builder container with the workspace bind mounted and cargo
// as the primary process.
func (b *Builder) createBuilder(ctx context.Context, image containerd.Image, root, component, triple string) (containerd.Container, error) {
	return b.client.NewContainer(ctx, builderID,
		containerd.WithImage(image),
		containerd.WithSnapshotter(snapshotter),
		containerd.WithNewSnapshot(builderID, image),
		containerd.WithRuntime(ociRuntime, nil),
		containerd.WithNewSpec(
			oci.WithImageConfig(image),
			oci.WithHostNamespace(specs.NetworkNamespace),
			oci.WithHostResolvconf,
			oci.WithMounts(workspaceMounts(root)),
			oci.WithProcessCwd(workdir),
			oci.WithProcessArgs(buildArgs(component, triple)...),
		),
	)
}

// Starts the builder task, waits for cargo to exit, and returns its exit
// code. Build output is streamed to the operator's terminal.
func (b *Builder) runToCompletion(ctx context.Context, ctr containerd.Container) (int, error) {
	task, err := ctr.NewTask(ctx, cio.NewCreator(
		cio.WithStreams(nil, os.Stdout, os.Stderr),
	))
	if err != nil {
		return 0, err
	}
	defer task.Delete(ctx)

	statusC, err := task.Wait(ctx)
	if err != nil {
		return 0, err
	}

	if err := task.Start(ctx); err != nil {
		return 0, err
	}

	status := <-statusC
	code, _, err := status.Result()
	if err != nil {
		return 0, err
	}

	return int(code), nil
}

// Removes a builder container left behind by a previous run, if any.
//
// Any running task is killed and the container is deleted along with its
// snapshot. This is a no-op when no stale builder exists.
func (b *Builder) removeStale(ctx context.Context) {
	existing, err := b.client.LoadContainer(ctx, builderID)
	if err != nil {
		if !errdefs.IsNotFound(err) {
			slog.Warn("failed to check for a stale builder", "id", builderID, "error", err)
		}
		return
	}

	if task, err := existing.Task(ctx, nil); err == nil {
		task.Kill(ctx, syscall.SIGKILL)
		task.Delete(ctx, containerd.WithProcessKill)
	}
	existing.Delete(ctx, containerd.WithSnapshotCleanup)
}

// Returns the OCI mounts exposing the workspace inside the builder.
func workspaceMounts(root string) []specs.Mount {
	return []specs.Mount{
		{
			Destination: workdir,
			Type:        "bind",
			Source:      root,
			Options:     []string{"rbind", "rw"},
		},
	}
}

// Returns the cargo command line run inside the builder.
func buildArgs(component, triple string) []string {
	return []string{"cargo", "build", "-p", component, "--release", "--target", triple}
}
