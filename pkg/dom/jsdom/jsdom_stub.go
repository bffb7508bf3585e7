//go:build !(js && wasm)

package jsdom

import "github.com/goliatone/go-formbind/pkg/dom"

// New reports ErrUnsupported outside js/wasm builds. Use dom.NewDocument for
// server-side rendering and tests.
func New() (dom.Document, error) {
	return nil, ErrUnsupported
}

// Mount reports ErrUnsupported outside js/wasm builds.
func Mount(selector string, el dom.Element) error {
	return ErrUnsupported
}
