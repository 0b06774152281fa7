//go:build !cgo

package hal

import "errors"

func RunWindow(Options, NewAppFunc) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
