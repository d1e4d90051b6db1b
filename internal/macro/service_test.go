package macro

import (
	"errors"
	"testing"
)

func validProfile() Profile {
	return Profile{
		Sex:           "male",
		Age:           30,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
}

func TestCompute_ReferenceProfile(t *testing.T) {
	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780
	// TDEE = 1780 * 1.55 = 2759, maintain keeps it
	targets, err := Compute(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if targets.Calories != 2759 {
		t.Errorf("expected 2759 calories, got %d", targets.Calories)
	}
	if targets.ProteinG != 176 {
		t.Errorf("expected 176g protein, got %d", targets.ProteinG)
	}
	if targets.FatsG != 77 {
		t.Errorf("expected 77g fats, got %d", targets.FatsG)
	}
	if targets.CarbsG != 341 {
		t.Errorf("expected 341g carbs, got %d", targets.CarbsG)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	first, err := Compute(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := Compute(validProfile())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("expected identical targets across calls, got %+v then %+v", first, again)
		}
	}
}

func TestCompute_EnergyBalance(t *testing.T) {
	profiles := []Profile{
		validProfile(),
		{Sex: "female", Age: 45, WeightKg: 62.5, HeightCm: 165, ActivityLevel: "light", Goal: "lose"},
		{Sex: "male", Age: 19, WeightKg: 95, HeightCm: 192, ActivityLevel: "very_active", Goal: "gain"},
		{Sex: "female", Age: 70, WeightKg: 50, HeightCm: 150, ActivityLevel: "sedentary", Goal: "maintain"},
	}

	for _, p := range profiles {
		targets, err := Compute(p)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", p, err)
		}

		energy := targets.ProteinG*4 + targets.FatsG*9 + targets.CarbsG*4
		diff := energy - targets.Calories
		if diff < 0 {
			diff = -diff
		}
		if diff > 3 {
			t.Errorf("energy balance off by %d for %+v: macros sum to %d, calories %d",
				diff, p, energy, targets.Calories)
		}
	}
}

func TestCompute_GoalMultipliers(t *testing.T) {
	lose := validProfile()
	lose.Goal = "lose"
	gain := validProfile()
	gain.Goal = "gain"

	loseTargets, err := Compute(lose)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gainTargets, err := Compute(gain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// TDEE 2759 * 0.8 = 2207.2 -> 2207; * 1.2 = 3310.8 -> 3311
	if loseTargets.Calories != 2207 {
		t.Errorf("expected 2207 calories for lose, got %d", loseTargets.Calories)
	}
	if gainTargets.Calories != 3311 {
		t.Errorf("expected 3311 calories for gain, got %d", gainTargets.Calories)
	}
}

func TestCompute_FemaleBMROffset(t *testing.T) {
	female := validProfile()
	female.Sex = "female"

	targets, err := Compute(female)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// BMR = 1780 - 166 = 1614; TDEE = 1614 * 1.55 = 2501.7 -> 2502
	if targets.Calories != 2502 {
		t.Errorf("expected 2502 calories, got %d", targets.Calories)
	}
}

func TestCompute_OutOfBoundsRejected(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"age too low", func(p *Profile) { p.Age = 10 }},
		{"age too high", func(p *Profile) { p.Age = 101 }},
		{"weight too low", func(p *Profile) { p.WeightKg = 29 }},
		{"weight too high", func(p *Profile) { p.WeightKg = 500 }},
		{"height too low", func(p *Profile) { p.HeightCm = 99 }},
		{"height too high", func(p *Profile) { p.HeightCm = 251 }},
		{"bad sex", func(p *Profile) { p.Sex = "other" }},
		{"bad activity", func(p *Profile) { p.ActivityLevel = "extreme" }},
		{"bad goal", func(p *Profile) { p.Goal = "bulk" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)

			_, err := Compute(p)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

func TestCompute_NegativeCarbsUnclamped(t *testing.T) {
	// Heavy, short, sedentary, losing: protein alone can exceed the
	// calorie budget. The remainder must stay negative, not be clamped.
	p := Profile{
		Sex:           "female",
		Age:           100,
		WeightKg:      300,
		HeightCm:      100,
		ActivityLevel: "sedentary",
		Goal:          "lose",
	}

	targets, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	energy := targets.ProteinG*4 + targets.FatsG*9 + targets.CarbsG*4
	diff := energy - targets.Calories
	if diff < 0 {
		diff = -diff
	}
	if diff > 3 {
		t.Errorf("energy balance must hold even with extreme inputs, off by %d", diff)
	}
}
