package scoring

import "testing"

func TestClassifyPerformance(t *testing.T) {
	cases := []struct {
		total, base int
		want        Level
	}{
		{300, 100, LevelLegendary},
		{299, 100, LevelMaster},
		{250, 100, LevelMaster},
		{249, 100, LevelExpert},
		{200, 100, LevelExpert},
		{199, 100, LevelSkilled},
		{160, 100, LevelSkilled},
		{159, 100, LevelLearner},
		{120, 100, LevelLearner},
		{119, 100, LevelBeginner},
		{0, 100, LevelBeginner},
		{0, 0, LevelBeginner},
		{5, 0, LevelLegendary}, // zero base clamps to 1
	}
	for _, tc := range cases {
		if got := ClassifyPerformance(tc.total, tc.base); got != tc.want {
			t.Errorf("ClassifyPerformance(%d, %d) = %q, want %q", tc.total, tc.base, got, tc.want)
		}
	}
}

func TestLevelDisplay(t *testing.T) {
	for _, l := range []Level{LevelLegendary, LevelMaster, LevelExpert, LevelSkilled, LevelLearner, LevelBeginner} {
		if l.DisplayName() == "" {
			t.Errorf("DisplayName for %q is empty", l)
		}
		if l.Description() == "" {
			t.Errorf("Description for %q is empty", l)
		}
	}
}
