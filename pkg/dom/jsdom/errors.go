// Package jsdom implements dom.Document on top of the browser DOM through
// syscall/js. It only does real work in js/wasm builds; elsewhere New and
// Mount report ErrUnsupported.
package jsdom

import "errors"

var (
	// ErrUnsupported signals that no browser document is reachable.
	ErrUnsupported = errors.New("jsdom: browser document unavailable")
	// ErrMountNotFound is returned when the mount selector matches nothing.
	ErrMountNotFound = errors.New("jsdom: mount element not found")
)
