package domain

import "math"

// HoursStats summarises a non-empty set of hoursPlayed values.
// Average is rounded to one decimal place; Min and Max are exact.
type HoursStats struct {
	Count   int
	Average float64
	Min     float64
	Max     float64
}

// GameStats is the aggregated view of all submissions for one game.
// The Count of Overall equals TotalSubmissions.
type GameStats struct {
	GameTitle        string
	TotalSubmissions int
	Overall          HoursStats
	ByCompletionType map[string]HoursStats
	ByPlatform       map[string]HoursStats
}

// ComputeGameStats aggregates submissions that all belong to gameTitle.
// The caller guarantees submissions is non-empty.
//
// Stored platform and completion type values are matched against the
// current vocabulary; values that match no member still count toward
// Overall but appear in no per-dimension bucket. Buckets without
// submissions are omitted. Bucket keys are the stored forms
// (Platform.StoredValue, CompletionType.Key).
func ComputeGameStats(gameTitle string, submissions []*Submission) GameStats {
	byType := make(map[CompletionType][]float64, len(completionTypes))
	byPlatform := make(map[Platform][]float64, len(platforms))
	all := make([]float64, 0, len(submissions))

	for _, s := range submissions {
		all = append(all, s.HoursPlayed)

		if ct, ok := resolveStoredCompletionType(s.CompletionType); ok {
			byType[ct] = append(byType[ct], s.HoursPlayed)
		}
		if p, ok := resolveStoredPlatform(s.Platform); ok {
			byPlatform[p] = append(byPlatform[p], s.HoursPlayed)
		}
	}

	stats := GameStats{
		GameTitle:        gameTitle,
		TotalSubmissions: len(submissions),
		Overall:          summarize(all),
		ByCompletionType: make(map[string]HoursStats),
		ByPlatform:       make(map[string]HoursStats),
	}
	for _, ct := range completionTypes {
		if hours := byType[ct]; len(hours) > 0 {
			stats.ByCompletionType[ct.Key()] = summarize(hours)
		}
	}
	for _, p := range platforms {
		if hours := byPlatform[p]; len(hours) > 0 {
			stats.ByPlatform[p.StoredValue()] = summarize(hours)
		}
	}
	return stats
}

func summarize(hours []float64) HoursStats {
	if len(hours) == 0 {
		return HoursStats{}
	}
	sum := 0.0
	lo, hi := hours[0], hours[0]
	for _, h := range hours {
		sum += h
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	return HoursStats{
		Count:   len(hours),
		Average: roundToTenth(sum / float64(len(hours))),
		Min:     lo,
		Max:     hi,
	}
}

// roundToTenth rounds half away from zero to one decimal place.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
