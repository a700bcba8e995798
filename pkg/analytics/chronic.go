package analytics

import "time"

// ChronicLoad computes the trailing chronic load baseline as of refDate: the
// trailing 28 days ending at refDate are partitioned into four non-overlapping
// 7-day blocks, each block is summed, and the block sums are averaged.
//
// When the series covers fewer than 28 days before refDate, only the complete
// trailing 7-day blocks it covers are averaged. With no complete block the
// chronic load is 0.
func ChronicLoad(series []DailyLoadPoint, refDate time.Time) float64 {
	if len(series) == 0 {
		return 0
	}

	ref := DateOf(refDate)
	first := DateOf(series[0].Date)
	loadByDate := make(map[time.Time]float64, len(series))
	for _, p := range series {
		day := DateOf(p.Date)
		if day.Before(first) {
			first = day
		}
		loadByDate[day] = p.DailyLoad
	}

	coveredDays := daysBetween(first, ref) + 1
	if coveredDays > 28 {
		coveredDays = 28
	}
	if coveredDays < 7 {
		return 0
	}
	weeks := coveredDays / 7

	total := 0.0
	for block := 0; block < weeks; block++ {
		blockEnd := ref.AddDate(0, 0, -7*block)
		for d := 0; d < 7; d++ {
			total += loadByDate[blockEnd.AddDate(0, 0, -d)]
		}
	}
	return total / float64(weeks)
}
