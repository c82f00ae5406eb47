package core

import (
	"sort"

	"github.com/auditlens/auditlens/schema"
)

// RankFiles sorts files by their attention score in descending order and
// returns the top 'limit' files. Ties break on path so a ranking is stable
// across runs regardless of extraction order. If limit is greater than the
// number of files, all files are returned in sorted order.
func RankFiles(files []schema.RankedFile, limit int) []schema.RankedFile {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Score != files[j].Score {
			return files[i].Score > files[j].Score
		}
		return files[i].Path < files[j].Path
	})
	if limit > 0 && len(files) > limit {
		return files[:limit]
	}
	return files
}
