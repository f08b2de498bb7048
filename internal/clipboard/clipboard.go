// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"

	perrors "github.com/flashingpumpkin/perkakas/internal/errors"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if sysclip.Unsupported {
		return perrors.ErrClipboardUnsupported
	}
	return sysclip.WriteAll(text)
}

// System writes to the operating system clipboard.
var System Writer = systemWriter{}

// Copy writes text with w and, on success, calls action if it is non-nil.
// action is not called when the write fails.
func Copy(w Writer, text string, action func()) error {
	if err := w.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if action != nil {
		action()
	}
	return nil
}

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string, action func()) error {
	return Copy(System, text, action)
}
