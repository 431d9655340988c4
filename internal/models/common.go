package models

import "time"

// Timestamps are stored as epoch milliseconds to stay compatible with
// collections written by earlier deployments of the portal.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
