package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditlens/auditlens/schema"
)

func sampleRankedFiles() []schema.RankedFile {
	return []schema.RankedFile{
		{
			Path:             "programs/amm/src/lib.rs",
			LinesOfCode:      820,
			NumFunctions:     14,
			TotalComplexity:  96,
			MaxComplexity:    18,
			UnsafeCodeBlocks: 1,
			PanicCalls:       3,
			Score:            67.4,
		},
		{
			Path:         "programs/amm/src/state.rs",
			LinesOfCode:  120,
			NumFunctions: 4,
			Score:        8.1,
		},
	}
}

func TestWriteRankedFilesTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()

	err := writeRankedFilesTable(sampleRankedFiles(), cfg, 100*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "lib.rs")
	assert.Contains(t, out, "67.4")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "Showing top 2 files (total loc: 940, total functions: 18)")
}

func TestWriteRankedFilesTableDetail(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainConfig()
	cfg.Detail = true

	err := writeRankedFilesTable(sampleRankedFiles(), cfg, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "820")
	assert.Contains(t, out, "Unsafe")
	assert.Contains(t, out, "Panics")
}

func TestWriteRankedFilesCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeRankedFilesCSV(&buf, sampleRankedFiles())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[0], "unsafe_blocks")
	assert.Contains(t, lines[1], "programs/amm/src/lib.rs")
	assert.Contains(t, lines[1], "67.4")
	assert.Contains(t, lines[2], "Low")
}

func TestWriteRankedFilesCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := writeRankedFilesCSV(&buf, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "rank")
}
