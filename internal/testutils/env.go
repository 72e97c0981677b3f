package testutils

import (
	"os"
	"strings"
	"testing"
)

// UnsetEnv unsets environment variables with the given prefix for the
// duration of a test.
func UnsetEnv(t *testing.T, prefix string) {
	t.Helper()

	for _, env := range os.Environ() {
		k, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(k, prefix) {
			// t.Setenv restores the original value once the test finishes.
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
	}
}
