package sequence

// Stats summarizes a normalized sequence for display.
type Stats struct {
	Length    int
	Counts    map[rune]int
	GCContent float64
	Unknown   int
}

// Analyze counts bases in the normalized form of raw.
func Analyze(raw string) Stats {
	seq := Normalize(raw)
	stats := Stats{Counts: make(map[rune]int)}
	for _, r := range seq {
		stats.Length++
		if _, ok := complement[r]; ok {
			stats.Counts[r]++
		} else {
			stats.Unknown++
		}
	}
	stats.GCContent = GCContent(seq)
	return stats
}

// GCContent returns the fraction of G and C bases in seq, ignoring case.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	gc, total := 0, 0
	for _, r := range seq {
		total++
		switch r {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(total)
}
