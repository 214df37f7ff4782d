package minutes

import "fmt"

// codePrefixes maps meeting type ids to their fixed single-letter code prefix.
// Unknown ids fall back to "X" rather than failing; the reference rows are
// seeded by migration and this table mirrors them.
var codePrefixes = map[int]string{
	1: "M", // MANCO
	2: "F", // Finance
	3: "P", // PTL
}

const fallbackPrefix = "X"

// codePrefix returns the code prefix for a meeting type
func codePrefix(meetingTypeID int) string {
	if prefix, ok := codePrefixes[meetingTypeID]; ok {
		return prefix
	}
	return fallbackPrefix
}

// formatCode renders the nth meeting code of a type, zero-padded to two
// digits. The width grows past two digits without truncation (F99 → F100).
func formatCode(prefix string, n int64) string {
	return fmt.Sprintf("%s%02d", prefix, n)
}
