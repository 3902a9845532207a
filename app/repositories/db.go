package repositories

import (
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// OpenDB opens the Badger database at path. An empty path opens a throwaway
// database in a fresh temporary directory, used by tests for isolation.
func OpenDB(path string) (*badger.DB, error) {
	if path == "" {
		tempPath, err := os.MkdirTemp("", "mfergm_test_db_")
		if err != nil {
			return nil, fmt.Errorf("Error creating temp dir: %v", err)
		}
		path = tempPath
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	return badger.Open(opts)
}
