package crypto

import (
	"strconv"
	"time"
)

// DefaultToleranceSeconds is the default replay window for timestamped
// signature schemes
const DefaultToleranceSeconds int64 = 300

// IsTimestampFresh reports whether a Unix-seconds timestamp is within
// toleranceSeconds of the current time, boundary inclusive. Non-positive
// or unparsable values are rejected. Millisecond-scale providers must
// convert before calling, or do their own millisecond arithmetic.
func IsTimestampFresh(value string, toleranceSeconds int64) bool {
	return isTimestampFreshAt(value, toleranceSeconds, time.Now().Unix())
}

// isTimestampFreshAt is the clock-injected form used by tests
func isTimestampFreshAt(value string, toleranceSeconds, now int64) bool {
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ts <= 0 {
		return false
	}

	diff := now - ts
	if diff < 0 {
		diff = -diff
	}

	return diff <= toleranceSeconds
}
