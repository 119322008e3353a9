//go:build integration || e2e

package clock

import (
	"os"
	"time"
)

// now returns the current time, or fake time if CERTKIT_FAKE_TIME is set.
// This allows deterministic time testing in e2e and integration tests.
func now() time.Time {
	if fakeTime := os.Getenv("CERTKIT_FAKE_TIME"); fakeTime != "" {
		t, err := time.Parse(time.RFC3339, fakeTime)
		if err != nil {
			panic("failed to parse CERTKIT_FAKE_TIME: " + err.Error())
		}
		return t
	}
	return time.Now()
}
