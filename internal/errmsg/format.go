// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Directory operations
	OpDirRead   Op = "read directory"
	OpDirEnter  Op = "enter directory"
	OpDirCreate Op = "create directory"

	// Entry operations
	OpEntryRename Op = "rename"
	OpEntryCreate Op = "create file"
	OpEntryFind   Op = "find"
	OpFileView    Op = "view file"

	// Bookmarks
	OpBookmarkSet    Op = "set bookmark"
	OpBookmarkJump   Op = "jump to bookmark"
	OpBookmarkDelete Op = "delete bookmark"

	// Key bindings
	OpKeyBinding    Op = "run key binding"
	OpBindingsBuild Op = "build key bindings"

	// Console
	OpCommand Op = "run command"

	// Configuration
	OpConfigLoad   Op = "load configuration"
	OpConfigReload Op = "reload configuration"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
