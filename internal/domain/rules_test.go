package domain

import "testing"

func TestHasFour(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		player PlayerID
		want   bool
	}{
		{
			name: "horizontal four",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"..OOO..",
				"..XXXX.",
			},
			player: Player1,
			want:   true,
		},
		{
			name: "vertical four",
			rows: []string{
				".......",
				".......",
				"..X....",
				"..X.O..",
				"..X.O..",
				"..X.O..",
			},
			player: Player1,
			want:   true,
		},
		{
			name: "diagonal down-right four",
			rows: []string{
				".......",
				".......",
				".O.....",
				".XO....",
				".XXO...",
				".XXXO..",
			},
			player: Player2,
			want:   true,
		},
		{
			name: "diagonal up-right four",
			rows: []string{
				".......",
				".......",
				"....X..",
				"...XO..",
				"..XOO..",
				".XOXO..",
			},
			player: Player1,
			want:   true,
		},
		{
			name: "three with a gap is not four",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"XXX.X..",
			},
			player: Player1,
			want:   false,
		},
		{
			name: "plain three is not four",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"..XXX..",
			},
			player: Player1,
			want:   false,
		},
		{
			name: "broken diagonal is not four",
			rows: []string{
				".......",
				".......",
				".O.....",
				".XX....",
				".XXO...",
				".XXXO..",
			},
			player: Player2,
			want:   false,
		},
		{
			name:   "empty board has no four",
			rows:   []string{".......", ".......", ".......", ".......", ".......", "......."},
			player: Player1,
			want:   false,
		},
		{
			name: "opponent's four does not count",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"..OOO..",
				"..XXXX.",
			},
			player: Player2,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildBoard(t, tt.rows)
			if got := HasFour(b, tt.player); got != tt.want {
				t.Fatalf("HasFour = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckWinAtMatchesHasFour(t *testing.T) {
	b := NewBoard(6, 7)

	// build a horizontal three for X with O answers stacked on top
	moves := []struct {
		col    int
		player PlayerID
	}{
		{0, Player1}, {0, Player2},
		{1, Player1}, {1, Player2},
		{2, Player1}, {2, Player2},
	}
	for _, m := range moves {
		if _, err := b.Drop(m.col, m.player); err != nil {
			t.Fatalf("setup drop failed: %v", err)
		}
	}

	if CheckWinAt(b, 5, 2, Player1) {
		t.Fatal("CheckWinAt reported a win for an incomplete line")
	}
	if HasFour(b, Player1) {
		t.Fatal("HasFour reported a win for an incomplete line")
	}

	row, err := b.Drop(3, Player1)
	if err != nil {
		t.Fatalf("winning drop failed: %v", err)
	}

	if !CheckWinAt(b, row, 3, Player1) {
		t.Fatal("CheckWinAt missed the completed horizontal four")
	}
	if !HasFour(b, Player1) {
		t.Fatal("HasFour missed the completed horizontal four")
	}
}
