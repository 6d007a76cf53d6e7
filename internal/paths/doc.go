// Provides well-known filesystem locations for the release tool.
//
// Cargo locations follow the rustup installation conventions, honoring
// $CARGO_HOME where set. The distribution directory defaults to "dist"
// under the project root.
package paths
