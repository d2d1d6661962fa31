package session

import (
	"time"

	"pulse-ai/backend/internal/model"
)

// Recency bucket labels, in display order.
const (
	GroupToday     = "Today"
	GroupYesterday = "Yesterday"
	GroupWeek      = "Previous 7 Days"
	GroupOlder     = "Older"
)

// GroupByRecency partitions the collection into the four recency buckets
// based on each session's last activity (updatedAt, falling back to
// createdAt). Sessions keep their relative order from the collection and
// empty buckets are omitted. Every session lands in exactly one bucket.
func (s *Store) GroupByRecency(now time.Time) []model.SessionGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	startOfToday := startOfDay(now)
	startOfYesterday := startOfToday.AddDate(0, 0, -1)
	weekAgo := startOfToday.AddDate(0, 0, -7)

	buckets := map[string][]*model.ChatSession{}
	for _, sess := range s.sessions {
		ts := sess.UpdatedAt
		if ts == 0 {
			ts = sess.CreatedAt
		}
		t := time.UnixMilli(ts).In(now.Location())

		var label string
		switch {
		case !t.Before(startOfToday):
			label = GroupToday
		case !t.Before(startOfYesterday):
			label = GroupYesterday
		case t.After(weekAgo):
			label = GroupWeek
		default:
			label = GroupOlder
		}
		buckets[label] = append(buckets[label], cloneSession(sess))
	}

	var groups []model.SessionGroup
	for _, label := range []string{GroupToday, GroupYesterday, GroupWeek, GroupOlder} {
		if sessions := buckets[label]; len(sessions) > 0 {
			groups = append(groups, model.SessionGroup{Label: label, Sessions: sessions})
		}
	}
	return groups
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
