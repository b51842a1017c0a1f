package difficulty

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSelect_ExplicitWins(t *testing.T) {
	explicit := Config{
		Level:               LevelAdvanced,
		QuestionsPerSession: 12,
		EasyPct:             10,
		MediumPct:           30,
		HardPct:             60,
		MinScoreToPass:      80,
	}
	got := Select(&explicit, &History{Attempts: 0, AvgScore: 0})
	if got != explicit {
		t.Errorf("Select with explicit = %+v, want %+v", got, explicit)
	}
}

func TestSelect_FromHistory(t *testing.T) {
	cases := []struct {
		name  string
		prior *History
		want  Level
	}{
		{"no history", nil, LevelBasic},
		{"one attempt", &History{Attempts: 1, AvgScore: 1.0}, LevelBasic},
		{"two attempts low score", &History{Attempts: 2, AvgScore: 0.5}, LevelBasic},
		{"two attempts solid score", &History{Attempts: 2, AvgScore: 0.75}, LevelIntermediate},
		{"two attempts high score", &History{Attempts: 2, AvgScore: 0.95}, LevelIntermediate},
		{"three attempts high score", &History{Attempts: 3, AvgScore: 0.95}, LevelAdvanced},
		{"boundary 0.7", &History{Attempts: 2, AvgScore: 0.7}, LevelIntermediate},
		{"boundary 0.9", &History{Attempts: 3, AvgScore: 0.9}, LevelAdvanced},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Select(nil, tc.prior)
			if got.Level != tc.want {
				t.Errorf("Select(nil, %+v).Level = %q, want %q", tc.prior, got.Level, tc.want)
			}
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	prior := &History{Attempts: 4, AvgScore: 0.85}
	first := Select(nil, prior)
	for i := 0; i < 10; i++ {
		if got := Select(nil, prior); got != first {
			t.Fatalf("Select is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestQuestionCounts_SumToN(t *testing.T) {
	for _, cfg := range []Config{basicConfig(), intermediateConfig(), advancedConfig()} {
		for n := 1; n <= 12; n++ {
			easy, medium, hard := cfg.QuestionCounts(n)
			if easy+medium+hard != n {
				t.Errorf("%s: counts for n=%d sum to %d", cfg.Level, n, easy+medium+hard)
			}
			if easy < 0 || medium < 0 || hard < 0 {
				t.Errorf("%s: negative bucket for n=%d: %d/%d/%d", cfg.Level, n, easy, medium, hard)
			}
		}
	}
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	overrides, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if overrides != nil {
		t.Errorf("overrides = %v, want nil", overrides)
	}
}

func TestLoadOverrides_FillsPassDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.json")
	body := `{"algebra-1": {"level": "advanced", "questions_per_session": 8, "easy_pct": 20, "medium_pct": 40, "hard_pct": 40}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	overrides, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, ok := overrides["algebra-1"]
	if !ok {
		t.Fatal("algebra-1 override missing")
	}
	if cfg.MinScoreToPass != DefaultMinScoreToPass {
		t.Errorf("MinScoreToPass = %d, want default %d", cfg.MinScoreToPass, DefaultMinScoreToPass)
	}
}

func TestLoadOverrides_RejectsBadMix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difficulty.json")
	body := `{"algebra-1": {"level": "basic", "questions_per_session": 5, "easy_pct": 50, "medium_pct": 30, "hard_pct": 30}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Fatal("expected error for mix summing to 110")
	}
}
