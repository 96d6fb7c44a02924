package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a unique sqlite database file. The file lives
// in a test-scoped temporary directory and is cleaned up with it.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("%s.db", uuid.New()))
}
