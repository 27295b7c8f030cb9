package bot

import "github.com/iamasit07/5-in-a-row/backend/internal/domain"

func place(b *domain.Board, cell domain.Cell, moves ...[2]int) {
	for _, m := range moves {
		b[m[0]][m[1]] = cell
	}
}

func row(r int, cols ...int) [][2]int {
	out := make([][2]int, 0, len(cols))
	for _, c := range cols {
		out = append(out, [2]int{r, c})
	}
	return out
}
