//go:build !integration && !e2e

package clock

import "time"

func now() time.Time {
	return time.Now()
}
