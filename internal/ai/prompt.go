package ai

import (
	"fmt"
	"strings"

	"github.com/macrofit/nutriplan/internal/storage"
)

const systemPrompt = "You are a certified nutritionist creating personalized nutrition plans. " +
	"Provide a detailed, practical plan with daily meal suggestions, portion guidance " +
	"and hydration advice tailored to the client's profile. Do not give medical diagnoses; " +
	"advise consulting a doctor where medical conditions are involved."

// buildPrompt renders the questionnaire into the fixed drafting prompt.
// Field order is part of the contract; absent fields become "None".
func buildPrompt(q storage.Questionnaire) string {
	return fmt.Sprintf(
		"Create a personalized nutrition plan for a client with the following profile:\n\n"+
			"Current Diet: %s\n"+
			"Dietary Restrictions: %s\n"+
			"Allergies: %s\n"+
			"Medical Conditions: %s\n"+
			"Sleep Hours: %s\n"+
			"Stress Level: %s\n"+
			"Physical Activity Level: %s\n"+
			"Workout Frequency: %s days/week\n"+
			"Workout Types: %s\n"+
			"Goals: %s\n"+
			"Timeframe: %s\n"+
			"Additional Information: %s",
		orNone(q.CurrentDiet),
		orNoneJoined(q.DietaryRestrictions),
		orNone(q.Allergies),
		orNone(q.MedicalConditions),
		orNone(q.SleepHours),
		orNone(q.StressLevel),
		orNone(q.PhysicalActivityLevel),
		orNone(q.WorkoutFrequency),
		orNoneJoined(q.WorkoutType),
		orNoneJoined(q.Goals),
		orNone(q.Timeframe),
		orNone(q.AdditionalInfo),
	)
}

func orNone(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "None"
	}
	return v
}

func orNoneJoined(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}
