package services

import (
	"sort"
	"time"

	"playtrack/internal/domain"
)

// Bucket width bounds for concurrency series, in seconds.
const (
	DefaultBucketSeconds = 60
	minBucketSeconds     = 30
	maxBucketSeconds     = 900
)

// ConcurrencyPoint is one step of a concurrency series: Count players were
// engaged at some moment during the bucket starting at Timestamp.
type ConcurrencyPoint struct {
	Timestamp time.Time
	Count     int
}

// ClampBucket normalizes a requested bucket width in seconds to the
// supported range. Zero and negative values mean "unspecified" and fall
// back to the default.
func ClampBucket(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = DefaultBucketSeconds
	}
	if seconds < minBucketSeconds {
		seconds = minBucketSeconds
	}
	if seconds > maxBucketSeconds {
		seconds = maxBucketSeconds
	}
	return time.Duration(seconds) * time.Second
}

// ConcurrencySeries computes how many distinct players were engaged during
// each bucket-wide step between the earliest session edge and now. Sessions
// of the same player are merged first, so a player running two activities at
// once still counts as one.
func ConcurrencySeries(sessions []domain.Session, bucket time.Duration, now time.Time) []ConcurrencyPoint {
	byPlayer := make(map[string][]domain.Interval)
	for _, s := range sessions {
		if s.StartedAt.IsZero() {
			continue
		}
		iv := s.Interval(now)
		if iv.Empty() {
			continue
		}
		byPlayer[s.PlayerID] = append(byPlayer[s.PlayerID], iv)
	}

	// One +1/-1 pair per merged interval, accumulated on bucket boundaries.
	deltas := make(map[int64]int)
	for _, intervals := range byPlayer {
		for _, iv := range mergeIntervals(intervals) {
			deltas[floorToBucket(iv.Start, bucket).Unix()]++
			deltas[ceilToBucket(iv.End, bucket).Unix()]--
		}
	}
	if len(deltas) == 0 {
		return nil
	}

	earliest := int64(0)
	first := true
	for ts := range deltas {
		if first || ts < earliest {
			earliest = ts
			first = false
		}
	}

	step := int64(bucket / time.Second)
	count := 0
	var series []ConcurrencyPoint
	for ts := earliest; time.Unix(ts, 0).Before(now); ts += step {
		count += deltas[ts]
		if count < 0 {
			count = 0
		}
		series = append(series, ConcurrencyPoint{
			Timestamp: time.Unix(ts, 0).UTC(),
			Count:     count,
		})
	}

	return series
}

// mergeIntervals collapses overlapping or touching intervals into disjoint
// coverage. The input is not modified.
func mergeIntervals(intervals []domain.Interval) []domain.Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]domain.Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []domain.Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// floorToBucket aligns t down to a whole bucket since the Unix epoch.
func floorToBucket(t time.Time, bucket time.Duration) time.Time {
	b := int64(bucket / time.Second)
	return time.Unix((t.Unix()/b)*b, 0).UTC()
}

// ceilToBucket aligns t up to the next whole bucket since the Unix epoch,
// leaving values already on a boundary in place.
func ceilToBucket(t time.Time, bucket time.Duration) time.Time {
	b := int64(bucket / time.Second)
	sec := t.Unix()
	if sec%b == 0 && t.Nanosecond() == 0 {
		return time.Unix(sec, 0).UTC()
	}
	return time.Unix((sec/b+1)*b, 0).UTC()
}
