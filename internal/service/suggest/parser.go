package suggest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

type coordPattern struct {
	re       *regexp.Regexp
	letterAt int // submatch index of the column letter
	digitsAt int // submatch index of the row number
}

// Tried in order; the first pattern that matches decides the result.
var coordPatterns = []coordPattern{
	{re: regexp.MustCompile(`(?i)\b([A-O])(\d{1,2})\b`), letterAt: 1, digitsAt: 2},
	{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*,\s*([A-O])\b`), letterAt: 2, digitsAt: 1},
	{re: regexp.MustCompile(`(?i)\(\s*([A-O])\s*,\s*(\d{1,2})\s*\)`), letterAt: 1, digitsAt: 2},
	{re: regexp.MustCompile(`(?i)\(\s*(\d{1,2})\s*,\s*([A-O])\s*\)`), letterAt: 2, digitsAt: 1},
}

// ParseMove extracts a move from free text such as "H8", "8,H", "(H,8)" or
// "(8,H)". Letters A-O select the column, 1-15 the row.
func ParseMove(text string) (domain.Move, bool) {
	for _, p := range coordPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return toMove(m[p.letterAt], m[p.digitsAt])
	}
	return domain.Move{}, false
}

func toMove(letter, digits string) (domain.Move, bool) {
	col := strings.IndexByte(domain.Columns, strings.ToUpper(letter)[0])
	row, err := strconv.Atoi(digits)
	if err != nil || col < 0 || row < 1 || row > domain.Size {
		return domain.Move{}, false
	}
	return domain.NewMove(row-1, col), true
}
