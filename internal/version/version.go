// Package version holds the build version of the portal.
package version

// Version is the current release version. Overridden at build time via
// -ldflags "-X sitterdesk/internal/version.Version=...".
var Version = "1.0.0"
