//go:build !cgo

package hal

import "fmt"

// RunWindow is unavailable without cgo.
func RunWindow(func(HAL) func() error) error {
	return fmt.Errorf("window: built without cgo: %w (use -headless or -term)", ErrNotImplemented)
}
