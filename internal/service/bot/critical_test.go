package bot

import (
	"testing"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
)

func TestIsOpenFour(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *domain.Board)
		move  [2]int
		want  bool
	}{
		{
			name:  "both ends open",
			setup: func(b *domain.Board) { place(b, domain.Black, row(7, 3, 4, 5)...) },
			move:  [2]int{7, 6},
			want:  true,
		},
		{
			name: "one end open",
			setup: func(b *domain.Board) {
				place(b, domain.Black, row(7, 3, 4, 5)...)
				place(b, domain.White, [2]int{7, 2})
			},
			move: [2]int{7, 6},
			want: true,
		},
		{
			name: "both ends blocked",
			setup: func(b *domain.Board) {
				place(b, domain.Black, row(7, 3, 4, 5)...)
				place(b, domain.White, [2]int{7, 2}, [2]int{7, 7})
			},
			move: [2]int{7, 6},
			want: false,
		},
		{
			name:  "edge on one side",
			setup: func(b *domain.Board) { place(b, domain.Black, row(0, 0, 1, 2)...) },
			move:  [2]int{0, 3},
			want:  true,
		},
		{
			name:  "gap is not crossed",
			setup: func(b *domain.Board) { place(b, domain.Black, row(7, 3, 4, 6)...) },
			move:  [2]int{7, 7},
			want:  false,
		},
		{
			name:  "three is not four",
			setup: func(b *domain.Board) { place(b, domain.Black, row(7, 4, 5)...) },
			move:  [2]int{7, 6},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b domain.Board
			tt.setup(&b)
			if got := IsOpenFour(&b, tt.move[0], tt.move[1], domain.SideBlack); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFindCriticalMoveWin(t *testing.T) {
	var b domain.Board
	place(&b, domain.Black, row(7, 3, 4, 5, 6)...)

	move, reason, ok := FindCriticalMove(&b, domain.SideBlack)
	if !ok {
		t.Fatalf("expected a critical move")
	}
	if reason != domain.ReasonWin {
		t.Fatalf("expected reason %s, got %s", domain.ReasonWin, reason)
	}
	// (7,2) precedes (7,7) in row-major order
	if move != domain.NewMove(7, 2) {
		t.Fatalf("expected (7,2), got %+v", move)
	}
}

func TestFindCriticalMoveBlockWin(t *testing.T) {
	var b domain.Board
	place(&b, domain.White, row(3, 3, 4, 5, 6)...)
	place(&b, domain.Black, [2]int{10, 10})

	move, reason, ok := FindCriticalMove(&b, domain.SideBlack)
	if !ok || reason != domain.ReasonBlockWin {
		t.Fatalf("expected BLOCK_WIN, got %q (ok=%v)", reason, ok)
	}
	if move != domain.NewMove(3, 2) {
		t.Fatalf("expected (3,2), got %+v", move)
	}
}

func TestFindCriticalMoveWinPrecedesBlock(t *testing.T) {
	var b domain.Board
	// the opponent's four comes first in scan order
	place(&b, domain.White, row(2, 3, 4, 5, 6)...)
	place(&b, domain.Black, row(10, 3, 4, 5, 6)...)

	move, reason, ok := FindCriticalMove(&b, domain.SideBlack)
	if !ok || reason != domain.ReasonWin {
		t.Fatalf("expected WIN, got %q (ok=%v)", reason, ok)
	}
	if move != domain.NewMove(10, 2) {
		t.Fatalf("expected (10,2), got %+v", move)
	}
}

func TestFindCriticalMoveCreateOpenFour(t *testing.T) {
	var b domain.Board
	place(&b, domain.Black, row(7, 5, 6, 7)...)
	place(&b, domain.White, [2]int{0, 14})

	move, reason, ok := FindCriticalMove(&b, domain.SideBlack)
	if !ok || reason != domain.ReasonCreateOpenFour {
		t.Fatalf("expected CREATE_OPEN_FOUR, got %q (ok=%v)", reason, ok)
	}
	if move != domain.NewMove(7, 4) {
		t.Fatalf("expected (7,4), got %+v", move)
	}
}

func TestFindCriticalMoveBlockOpenFour(t *testing.T) {
	var b domain.Board
	place(&b, domain.White, row(7, 5, 6, 7)...)
	place(&b, domain.Black, [2]int{0, 0})

	move, reason, ok := FindCriticalMove(&b, domain.SideBlack)
	if !ok || reason != domain.ReasonBlockOpenFour {
		t.Fatalf("expected BLOCK_OPEN_FOUR, got %q (ok=%v)", reason, ok)
	}
	if move != domain.NewMove(7, 4) {
		t.Fatalf("expected (7,4), got %+v", move)
	}
}

func TestFindCriticalMoveNone(t *testing.T) {
	var b domain.Board
	place(&b, domain.Black, [2]int{7, 7})
	place(&b, domain.White, [2]int{7, 8})

	if _, reason, ok := FindCriticalMove(&b, domain.SideBlack); ok {
		t.Fatalf("expected no critical move, got %s", reason)
	}
}
