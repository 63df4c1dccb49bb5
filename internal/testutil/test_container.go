//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// Packages share one MongoDB container per test binary. Each test carves out
// its own database (see SanitizeDBName) so parallel tests do not collide.
var (
	sharedMu  sync.Mutex
	shared    *MongoDBContainer
	sharedErr error
)

// GetSharedMongoDB lazily starts the package-wide MongoDB container. Repeated
// calls return the same container; pair with CleanupSharedMongoDB in TestMain.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil && sharedErr == nil {
		shared, sharedErr = SetupMongoDB(ctx)
	}
	return shared, sharedErr
}

// CleanupSharedMongoDB terminates the shared container if one was started.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		return nil
	}
	err := shared.Cleanup(ctx)
	shared = nil
	return err
}

// SetupTestMainWithMongoDB wraps m.Run with shared-container setup and
// teardown:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		// Docker reaps the container eventually either way.
		fmt.Fprintf(os.Stderr, "warning: failed to cleanup shared MongoDB container: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared container's connection string.
// Panics if GetSharedMongoDB has not run yet.
func GetSharedContainerURI() string {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a unique, valid MongoDB database
// name: path separators become underscores, the result is capped at 50
// characters and suffixed with a timestamp.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, testName)

	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
