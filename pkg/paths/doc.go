// Package paths provides centralized path handling for helpex.
// It follows the XDG Base Directory specification through adrg/xdg and lets
// every directory be overridden from the environment, which is also how the
// tests isolate themselves from the real home directory.
package paths
