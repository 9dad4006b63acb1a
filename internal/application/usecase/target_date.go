package usecase

import (
	"regexp"
	"time"
)

var subjectDateRegex = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2})\)`)

// ResolveTargetDate decide qual data deve ser verificada.
//
// Without a previous ticket the target is yesterday. Otherwise it is the day
// after the date embedded in the previous subject as "(YYYY-MM-DD)", unless
// that day is today, whose entries may still be incomplete. Any parse failure
// falls back to yesterday.
func ResolveTargetDate(previousSubject string, found bool, today time.Time) time.Time {
	today = truncateToDate(today)
	yesterday := today.AddDate(0, 0, -1)

	if !found {
		return yesterday
	}

	match := subjectDateRegex.FindStringSubmatch(previousSubject)
	if match == nil {
		return yesterday
	}

	last, err := time.ParseInLocation(time.DateOnly, match[1], today.Location())
	if err != nil {
		return yesterday
	}

	next := last.AddDate(0, 0, 1)
	if next.Equal(today) {
		return yesterday
	}
	return next
}

// truncateToDate zera o horário mantendo o fuso.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
