package analytics

import (
	"fmt"
	"time"

	"github.com/athlion/athlion/pkg/session"
)

// DailyLoads sums unit loads per calendar day over the closed interval
// [from, to]. The result has exactly one point per day, in ascending order;
// days without sessions carry a zero load. Sessions outside the interval are
// ignored.
func DailyLoads(sessions []session.TrainingSession, from time.Time, to time.Time) []DailyLoadPoint {
	start := DateOf(from)
	end := DateOf(to)
	if start.After(end) {
		panic(fmt.Sprintf("analytics: daily loads interval %s - %s is inverted",
			start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	loadByDate := make(map[time.Time]float64, len(sessions))
	for _, s := range sessions {
		day := DateOf(s.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		loadByDate[day] += s.UnitLoad
	}

	points := make([]DailyLoadPoint, 0, daysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		points = append(points, DailyLoadPoint{Date: d, DailyLoad: loadByDate[d]})
	}
	return points
}
