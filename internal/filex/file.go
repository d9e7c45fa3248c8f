package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (including parents) if it does not already exist
// and returns the same path for chaining.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
