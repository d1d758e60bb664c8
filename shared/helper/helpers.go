package helper

import "fmt"

// Must calls getFn and returns its value, panicking if it fails.
// Use it for panic-on-failure accessors, where a failure means misuse.
func Must[T any](getFn func() (T, error)) T {
	res, err := getFn()
	if err != nil {
		panic(fmt.Errorf("must: %w", err))
	}
	return res
}
