// Package web carries the single-page client shell and its presentation
// configuration. The shell is embedded into the binary and served at the
// root; at mount time it fetches the toast-notification options.
package web

import (
	_ "embed"
)

//go:embed static/index.html
var indexHTML []byte

// Index returns the embedded single-page shell.
func Index() []byte {
	return indexHTML
}

// Toast positions recognized by the notification plugin.
const (
	PositionTopRight    = "top-right"
	PositionTopLeft     = "top-left"
	PositionTopCenter   = "top-center"
	PositionBottomRight = "bottom-right"
	PositionBottomLeft  = "bottom-left"
)

// ToastOptions is the declarative configuration record for the client-side
// toast-notification plugin. The field set enumerates every recognized
// option; anything else is ignored by the client.
type ToastOptions struct {
	Position               string  `json:"position"`
	Timeout                int     `json:"timeout"` // milliseconds
	CloseOnClick           bool    `json:"closeOnClick"`
	PauseOnFocusLoss       bool    `json:"pauseOnFocusLoss"`
	PauseOnHover           bool    `json:"pauseOnHover"`
	Draggable              bool    `json:"draggable"`
	DraggablePercent       float64 `json:"draggablePercent"`
	ShowCloseButtonOnHover bool    `json:"showCloseButtonOnHover"`
	HideProgressBar        bool    `json:"hideProgressBar"`
	Icon                   bool    `json:"icon"`
	Transition             string  `json:"transition"`
}

// DefaultToastOptions returns the fixed display options the shell mounts
// with: top-right placement, 3-second timeout, drag-to-dismiss.
func DefaultToastOptions() ToastOptions {
	return ToastOptions{
		Position:               PositionTopRight,
		Timeout:                3000,
		CloseOnClick:           true,
		PauseOnFocusLoss:       true,
		PauseOnHover:           true,
		Draggable:              true,
		DraggablePercent:       0.6,
		ShowCloseButtonOnHover: false,
		HideProgressBar:        false,
		Icon:                   true,
		Transition:             "bounce",
	}
}
