package workouts

import "math"

// Aggregate computes the arithmetic mean of every numeric field over all entries.
// Missing values count as 0 but the entry still counts towards the divisor.
// An empty input yields an all-zero snapshot with duration 00:00:00.
func Aggregate(entries []LogEntry) AveragesSnapshot {
	if len(entries) == 0 {
		return AveragesSnapshot{}
	}

	var (
		durationSum, distanceSum, paceSum                float64
		zone1Sum, zone2Sum, zone3Sum, zone4Sum, zone5Sum float64
		avgHRSum, maxHRSum, strainSum                    float64
	)

	for i := range entries {
		e := &entries[i]
		if e.Duration != nil {
			durationSum += float64(e.Duration.TotalSeconds())
		}
		distanceSum += valueOrZero(e.Distance)
		paceSum += valueOrZero(e.Pace)
		zone1Sum += valueOrZero(e.Zone1)
		zone2Sum += valueOrZero(e.Zone2)
		zone3Sum += valueOrZero(e.Zone3)
		zone4Sum += valueOrZero(e.Zone4)
		zone5Sum += valueOrZero(e.Zone5)
		avgHRSum += valueOrZero(e.AvgHR)
		maxHRSum += valueOrZero(e.MaxHR)
		strainSum += valueOrZero(e.Strain)
	}

	n := float64(len(entries))
	return AveragesSnapshot{
		DurationAvg: DurationFromSeconds(int64(math.Round(durationSum / n))),
		DistanceAvg: distanceSum / n,
		PaceAvg:     paceSum / n,
		Zone1Avg:    zone1Sum / n,
		Zone2Avg:    zone2Sum / n,
		Zone3Avg:    zone3Sum / n,
		Zone4Avg:    zone4Sum / n,
		Zone5Avg:    zone5Sum / n,
		AvgHRAvg:    avgHRSum / n,
		MaxHRAvg:    maxHRSum / n,
		StrainAvg:   strainSum / n,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
