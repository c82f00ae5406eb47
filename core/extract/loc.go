package extract

import "strings"

// CountLogicalLines counts the lines of text that contain actual code. Blank
// lines, single-line comments, and block comments are excluded; a line with
// an inline block comment still counts when code remains around it. Block
// comments spanning multiple lines contribute nothing for interior lines.
func CountLogicalLines(text string) int {
	count := 0
	inBlock := false
	for line := range strings.SplitSeq(text, "\n") {
		var code string
		code, inBlock = stripLineComments(line, inBlock)
		if strings.TrimSpace(code) != "" {
			count++
		}
	}
	return count
}

// stripLineComments removes comment spans from a single line and reports
// whether a block comment remains open at the end of it.
func stripLineComments(line string, inBlock bool) (string, bool) {
	var code strings.Builder
	i := 0
	for i < len(line) {
		if inBlock {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return code.String(), true
			}
			i += end + 2
			inBlock = false
			continue
		}
		if strings.HasPrefix(line[i:], "//") {
			return code.String(), false
		}
		if strings.HasPrefix(line[i:], "/*") {
			i += 2
			inBlock = true
			continue
		}
		code.WriteByte(line[i])
		i++
	}
	return code.String(), inBlock
}
