package notif

import (
	"sort"
	"strings"
	"time"

	"notifeed/internal/common"
)

// VisibleNotifications returns every undismissed record in storage
// order. Badge counters use this cheaper accessor; it applies none of
// the other filter dimensions and does not sort.
func VisibleNotifications(records []common.NotificationRecord) []common.NotificationRecord {
	out := make([]common.NotificationRecord, 0, len(records))
	for _, record := range records {
		if !record.Dismissed {
			out = append(out, record)
		}
	}
	return out
}

// FilteredNotifications computes the feed view: undismissed records
// matching the search query and every filter dimension, newest first.
// now anchors the date-range cutoffs.
func FilteredNotifications(
	records []common.NotificationRecord,
	filters common.FilterSpec,
	query string,
	now time.Time,
) []common.NotificationRecord {
	out := make([]common.NotificationRecord, 0, len(records))

	for _, record := range records {
		if record.Dismissed {
			continue
		}
		if !matchesQuery(record, query) {
			continue
		}
		if !matchesCategory(record, filters.Category) {
			continue
		}
		if !matchesPriority(record, filters.Priority) {
			continue
		}
		if !matchesRead(record, filters.Read) {
			continue
		}
		if !matchesDateRange(record, filters.DateRange, now) {
			continue
		}
		out = append(out, record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out
}

func matchesQuery(record common.NotificationRecord, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(record.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Message), q) {
		return true
	}
	if record.Actor != nil && strings.Contains(strings.ToLower(record.Actor.Name), q) {
		return true
	}
	return false
}

// matchesCategory applies the category dimension. The social filter
// deliberately widens to engagement records as well; engagement
// matches only itself.
func matchesCategory(record common.NotificationRecord, filter common.CategoryFilter) bool {
	switch filter {
	case common.FilterCategoryAll, "":
		return true
	case common.FilterCategorySocial:
		return record.Category == common.CategorySocial ||
			record.Category == common.CategoryEngagement
	default:
		return record.Category == common.Category(filter)
	}
}

func matchesPriority(record common.NotificationRecord, filter common.PriorityFilter) bool {
	if filter == common.FilterPriorityAll || filter == "" {
		return true
	}
	return record.Priority == common.Priority(filter)
}

func matchesRead(record common.NotificationRecord, filter common.ReadFilter) bool {
	switch filter {
	case common.FilterReadOnly:
		return record.Read
	case common.FilterUnreadOnly:
		return !record.Read
	default:
		return true
	}
}

func matchesDateRange(record common.NotificationRecord, filter common.DateRangeFilter, now time.Time) bool {
	if filter == common.FilterDateAll || filter == "" {
		return true
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var cutoff time.Time
	switch filter {
	case common.FilterDateToday:
		cutoff = startOfDay
	case common.FilterDateWeek:
		cutoff = startOfDay.AddDate(0, 0, -int(startOfDay.Weekday()))
	case common.FilterDateMonth:
		cutoff = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return true
	}

	return !record.Timestamp.Before(cutoff)
}
