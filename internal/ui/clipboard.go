package ui

import "github.com/atotto/clipboard"

// copyText writes to the system clipboard. Clipboard support varies by
// platform and the action is best-effort: failures are swallowed and
// only reflected in the returned flag.
func copyText(text string) bool {
	if err := clipboard.WriteAll(text); err != nil {
		return false
	}
	return true
}
