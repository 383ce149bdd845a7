package browser

import (
	"testing"

	"github.com/lehigh-university-libraries/episode-explorer/internal/episodes"
)

func rating(v float64) *float64 {
	return &v
}

// testTable has ten episodes over seasons 1-3 plus a sentinel season 27
// row. Two episodes are rated exactly 8.0 and one has no rating.
func testTable(t *testing.T) *episodes.Table {
	t.Helper()
	table, err := episodes.NewTable([]episodes.Episode{
		{Season: 1, Number: 1, Title: "Payback", Rating: rating(7.4), Description: "A cab driver is found murdered.", MainCast: episodes.Cast{"Christopher Meloni", "Mariska Hargitay"}},
		{Season: 1, Number: 2, Title: "A Single Life", Rating: rating(8.0), Description: "A woman falls to her death.", MainCast: episodes.Cast{"Mariska Hargitay", "Dann Florek"}},
		{Season: 1, Number: 3, Title: "...Or Just Look Like One", Rating: rating(7.1), Description: "A model is raped.", MainCast: episodes.Cast{"Christopher Meloni"}},
		{Season: 2, Number: 1, Title: "Wrong Is Right", Rating: rating(7.6), Description: "A double homicide.", MainCast: episodes.Cast{"Mariska Hargitay", "Ice-T"}},
		{Season: 2, Number: 2, Title: "Honor", Rating: nil, Description: "An Afghan woman is murdered.", MainCast: episodes.Cast{"Ice-T"}},
		{Season: 2, Number: 3, Title: "Closure", Rating: rating(8.0), Description: "A rape victim seeks CLOSURE.", MainCast: episodes.Cast{"Mariska Hargitay", "Olivia Benson"}},
		{Season: 2, Number: 4, Title: "Legacy", Rating: rating(7.9), Description: "", MainCast: episodes.Cast{}},
		{Season: 3, Number: 1, Title: "Repression", Rating: rating(7.3), Description: "Recovered memories.", MainCast: episodes.Cast{"Dann Florek", "Ice-T"}},
		{Season: 3, Number: 2, Title: "Wrath", Rating: rating(9.2), Description: "Stabler's family is threatened.", MainCast: episodes.Cast{"Christopher Meloni", "Ice-T"}},
		{Season: 27, Number: 1, Title: "Murder Placeholder", Rating: nil, Description: "", MainCast: episodes.Cast{"Mariska Hargitay"}},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func titles(eps []episodes.Episode) []string {
	out := make([]string, len(eps))
	for i, ep := range eps {
		out[i] = ep.Title
	}
	return out
}
