package recipetext

import "testing"

func TestBuildSteps(t *testing.T) {
	lines := []string{
		"Boil for 5 minutes",
		"Serve hot",
		"Simmer for 10 mins on low heat",
	}
	steps := BuildSteps(lines)
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}
	for i, s := range steps {
		if s.Index != i {
			t.Errorf("step %d has index %d", i, s.Index)
		}
		if s.Text != lines[i] {
			t.Errorf("step %d text = %q, want %q", i, s.Text, lines[i])
		}
	}
	if steps[0].DurationMinutes != 5 {
		t.Errorf("step 0 duration = %d, want 5", steps[0].DurationMinutes)
	}
	if steps[1].DurationMinutes != 0 {
		t.Errorf("step 1 duration = %d, want 0", steps[1].DurationMinutes)
	}
	if steps[2].DurationMinutes != 10 {
		t.Errorf("step 2 duration = %d, want 10", steps[2].DurationMinutes)
	}
}

func TestBuildStepsEmpty(t *testing.T) {
	if got := BuildSteps(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestStepDuration(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"Simmer for 10 minutes", 10},
		{"Bake for 1 minute", 1},
		{"Rest 15 min", 15},
		{"Fry for 3 mins, stirring", 3},
		{"5 मिनट तक उबालें", 5},
		{"Cook for 20 MINUTES on high", 20},
		{"No duration here", 0},
		{"Add 2 cups of water", 0},
		{"Wait a minute", 0},
		{"Knead for 10minutes", 10},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := stepDuration(tt.line); got != tt.want {
				t.Errorf("stepDuration(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestStepDurationFirstMatchWins(t *testing.T) {
	if got := stepDuration("Boil 5 minutes then simmer 20 minutes"); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}
