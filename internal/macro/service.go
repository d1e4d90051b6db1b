package macro

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidProfile = errors.New("invalid profile")

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

var goalMultipliers = map[string]float64{
	"lose":     0.8,
	"maintain": 1.0,
	"gain":     1.2,
}

// Compute derives calorie and macro targets from a biometric profile.
// Pure and deterministic; rounding is half-away-from-zero (math.Round).
//
// BMR uses Mifflin-St Jeor; TDEE scales it by the activity multiplier and
// the goal multiplier. Protein is fixed at 2.2 g per kg of body weight,
// fats take 25% of calories, carbs fill the remaining energy. Carbs are
// left unclamped: for pathological inputs the remainder can go negative,
// which keeps the energy balance exact instead of hiding the deficit.
func Compute(p Profile) (Targets, error) {
	if err := validate(p); err != nil {
		return Targets{}, err
	}

	var bmr float64
	if p.Sex == "male" {
		bmr = 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + 5
	} else {
		bmr = 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) - 161
	}

	tdee := bmr * activityMultipliers[p.ActivityLevel]
	calories := math.Round(tdee * goalMultipliers[p.Goal])

	protein := math.Round(p.WeightKg * 2.2)
	fats := math.Round(calories * 0.25 / 9)
	carbs := math.Round((calories - (protein*4 + fats*9)) / 4)

	return Targets{
		Calories: int(calories),
		ProteinG: int(protein),
		CarbsG:   int(carbs),
		FatsG:    int(fats),
	}, nil
}

func validate(p Profile) error {
	if p.Sex != "male" && p.Sex != "female" {
		return fmt.Errorf("%w: sex must be male or female", ErrInvalidProfile)
	}
	if p.Age < 15 || p.Age > 100 {
		return fmt.Errorf("%w: age must be between 15 and 100", ErrInvalidProfile)
	}
	if p.WeightKg < 30 || p.WeightKg > 300 {
		return fmt.Errorf("%w: weight_kg must be between 30 and 300", ErrInvalidProfile)
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		return fmt.Errorf("%w: height_cm must be between 100 and 250", ErrInvalidProfile)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity_level %q", ErrInvalidProfile, p.ActivityLevel)
	}
	if _, ok := goalMultipliers[p.Goal]; !ok {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	}
	return nil
}
