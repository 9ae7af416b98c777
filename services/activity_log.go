// Package services file: services/activity_log.go
package services

import "go-officials-portal/models"

// ActivityLogCap is the maximum number of activity entries retained.
// Oldest entries are evicted first once the cap is exceeded.
const ActivityLogCap = 40

// activityLog is a bounded deque of activity entries, newest first.
type activityLog struct {
	capacity int
	entries  []models.ActivityEntry
}

func newActivityLog(capacity int) *activityLog {
	return &activityLog{capacity: capacity}
}

// push prepends an entry and evicts the oldest beyond capacity.
func (l *activityLog) push(entry models.ActivityEntry) {
	l.entries = append([]models.ActivityEntry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// snapshot returns a copy of the entries, newest first.
func (l *activityLog) snapshot() []models.ActivityEntry {
	out := make([]models.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *activityLog) size() int {
	return len(l.entries)
}

func (l *activityLog) clear() {
	l.entries = nil
}
