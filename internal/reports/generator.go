package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/macrofit/nutriplan/internal/plans"
)

// Generator renders completed nutrition plans as PDF documents using the
// built-in core fonts, so no font assets ship with the binary.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// BuildPlanPDF renders a single plan request into a PDF document.
func (g *Generator) BuildPlanPDF(plan plans.PlanRequestDTO) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Nutrition Plan")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Plan ID: %s", plan.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Prepared for: %s", plan.UserID))
	pdf.Ln(5)
	if plan.NutritionistID != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Nutritionist: %s", plan.NutritionistID))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Completed: %s", plan.UpdatedAt.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Client Profile")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	writeField(pdf, "Goals", strings.Join(plan.Questionnaire.Goals, ", "))
	writeField(pdf, "Timeframe", plan.Questionnaire.Timeframe)
	writeField(pdf, "Dietary restrictions", strings.Join(plan.Questionnaire.DietaryRestrictions, ", "))
	writeField(pdf, "Allergies", plan.Questionnaire.Allergies)
	writeField(pdf, "Activity level", plan.Questionnaire.PhysicalActivityLevel)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Plan")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, plan.PlanDetails, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeField(pdf *gofpdf.Fpdf, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	pdf.Cell(0, 5, fmt.Sprintf("%s: %s", label, value))
	pdf.Ln(5)
}
