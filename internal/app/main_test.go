//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/velofab/pallet-service/internal/testutil"
)

// TestMain shares one MongoDB container across the app integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func getSharedContainerURI() string {
	return testutil.GetSharedContainerURI()
}

func sanitizeDBNameForApp(testName string) string {
	return testutil.SanitizeDBName(testName)
}
