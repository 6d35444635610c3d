package export

import (
	"fmt"
	"strings"

	"github.com/holyfit/holyfit-api/pkg/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	DietSheet    = "Diet Plan"
	WorkoutSheet = "Workout"
)

// ContentType is the MIME type of the generated workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// headerRow is where the table header sits, below the title and description
const headerRow = 4

// DietPlanWorkbook renders a plan as a single-sheet workbook. The caller must Close it.
func DietPlanWorkbook(plan *models.DietPlan) (*excelize.File, error) {
	if plan == nil {
		return nil, fmt.Errorf("no diet plan to export")
	}

	headers := []string{"식사", "칼로리 (kcal)", "단백질", "탄수화물", "지방", "재료"}
	f, err := newSheet(DietSheet, plan.Title, plan.Description, headers)
	if err != nil {
		return nil, err
	}

	// Write data
	for i, meal := range plan.Meals {
		row := headerRow + 1 + i
		values := []interface{}{meal.Name, meal.Calories, meal.Protein, meal.Carbs, meal.Fat, strings.Join(meal.Ingredients, ", ")}
		if err := setRow(f, DietSheet, row, values); err != nil {
			f.Close()
			return nil, err
		}
	}

	totalRow := headerRow + 1 + len(plan.Meals)
	if err := setRow(f, DietSheet, totalRow, []interface{}{"합계", plan.TotalCalories()}); err != nil {
		f.Close()
		return nil, err
	}

	setWidths(f, DietSheet, []float64{32, 14, 10, 10, 10, 60})
	return f, nil
}

// WorkoutWorkbook renders a routine as a single-sheet workbook. The caller must Close it.
func WorkoutWorkbook(routine *models.WorkoutRoutine) (*excelize.File, error) {
	if routine == nil {
		return nil, fmt.Errorf("no workout routine to export")
	}

	summary := fmt.Sprintf("%s · %d분", routine.Difficulty, routine.DurationMinutes)
	headers := []string{"운동", "세트", "횟수", "설명"}
	f, err := newSheet(WorkoutSheet, routine.Title, summary, headers)
	if err != nil {
		return nil, err
	}

	for i, ex := range routine.Exercises {
		row := headerRow + 1 + i
		if err := setRow(f, WorkoutSheet, row, []interface{}{ex.Name, ex.Sets, ex.Reps, ex.Description}); err != nil {
			f.Close()
			return nil, err
		}
	}

	setWidths(f, WorkoutSheet, []float64{28, 8, 16, 80})
	return f, nil
}

func newSheet(name, title, description string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	// Set header style
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	f.SetCellValue(name, "A1", title)
	f.SetCellStyle(name, "A1", "A1", titleStyle)
	f.SetCellValue(name, "A2", description)

	if err := setRow(f, name, headerRow, toInterfaces(headers)); err != nil {
		f.Close()
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	f.SetCellStyle(name, fmt.Sprintf("A%d", headerRow), last, headerStyle)

	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Filename suggests a download name for a view export
func Filename(view models.ViewKind) string {
	return fmt.Sprintf("holyfit-%s.xlsx", view)
}
