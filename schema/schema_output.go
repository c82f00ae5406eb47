package schema

// EnrichedRankedFile adds presentation data to a RankedFile.
type EnrichedRankedFile struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	RankedFile
}

// GetPlainLabel returns a plain text label indicating the criticality level
// based on a 0-100 score.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return "Critical"
	case score >= 60:
		return "High"
	case score >= 40:
		return "Moderate"
	default:
		return "Low"
	}
}

// EnrichRankedFiles adds rank and label to a list of ranked files.
func EnrichRankedFiles(files []RankedFile) []EnrichedRankedFile {
	output := make([]EnrichedRankedFile, len(files))
	for i, f := range files {
		output[i] = EnrichedRankedFile{
			Rank:       i + 1,
			Label:      GetPlainLabel(f.Score),
			RankedFile: f,
		}
	}
	return output
}

// DimensionLabels returns the label for each dimension score in a report,
// keyed by dimension name.
func DimensionLabels(scores ComplexityScores) map[string]string {
	return map[string]string{
		"structural": GetPlainLabel(float64(scores.Structural.Score)),
		"security":   GetPlainLabel(float64(scores.Security.Score)),
		"systemic":   GetPlainLabel(float64(scores.Systemic.Score)),
		"economic":   GetPlainLabel(float64(scores.Economic.Score)),
	}
}
