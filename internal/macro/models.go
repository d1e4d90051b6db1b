package macro

// Profile carries the biometric inputs for a macro calculation.
// It is ephemeral: nothing here is persisted.
type Profile struct {
	Sex           string  `json:"sex"`            // male | female
	Age           int     `json:"age"`            // 15..100
	WeightKg      float64 `json:"weight_kg"`      // 30..300
	HeightCm      float64 `json:"height_cm"`      // 100..250
	ActivityLevel string  `json:"activity_level"` // sedentary | light | moderate | active | very_active
	Goal          string  `json:"goal"`           // lose | maintain | gain
}

// Targets is the computed calorie and macronutrient breakdown.
type Targets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatsG    int `json:"fats_g"`
}
