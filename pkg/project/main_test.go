package project

import (
	"os"
	"testing"

	"github.com/arthur-debert/stamp/pkg/testutil"
)

func TestMain(m *testing.M) {
	testutil.QuietLogs()
	os.Exit(m.Run())
}
