package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/monetary-storm/internal/shell"
)

type nativeDialogs struct{}

// NativeDialogs shows modal dialogs through the platform's native toolkit.
// Calls block until the user dismisses the dialog.
func NativeDialogs() shell.Dialogs { return nativeDialogs{} }

func (nativeDialogs) Error(title, text string) error {
	return ignoreCancel(zenity.Error(text, zenity.Title(title), zenity.ErrorIcon))
}

func (nativeDialogs) Info(title, text string) error {
	return ignoreCancel(zenity.Info(text, zenity.Title(title), zenity.InfoIcon))
}

// closing a message box is not a failure
func ignoreCancel(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
