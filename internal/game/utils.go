package game

import (
	"fmt"
	"time"
)

// rotationAt is the cloud's angle about the vertical axis after elapsed
// seconds at speed radians per second.
func rotationAt(elapsed, speed float64) float32 {
	return float32(-elapsed * speed)
}

// formatFrameTime formats a duration as milliseconds with one decimal.
func formatFrameTime(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
