package domain

import "testing"

func TestPlayerDisplayName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"LeBron", "James", "LeBron James"},
		{"", "James", "James"},
		{"LeBron", "", "LeBron"},
		{"", "", ""},
	}
	for _, tc := range cases {
		p := Player{FirstName: tc.first, LastName: tc.last}
		if got := p.DisplayName(); got != tc.want {
			t.Fatalf("DisplayName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestKindLabelsAreStable(t *testing.T) {
	// Partition labels are part of the storage contract; changing them
	// orphans existing rows.
	if KindTeam != "NbaTeam" || KindPlayer != "NbaPlayer" || KindGame != "NbaGame" || KindStatistic != "NbaStatistic" {
		t.Fatalf("unexpected kind labels: %s %s %s %s", KindTeam, KindPlayer, KindGame, KindStatistic)
	}
}
