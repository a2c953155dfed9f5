// Package report renders a client's history as an xlsx workbook.
package report

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/generator"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetSummary  = "Resumen"
	SheetRoutines = "Rutinas"
	SheetPlans    = "Planes"
	SheetProgress = "Progreso"
)

// ContentType is the MIME type of a rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateLayout = "02/01/2006"

// ClientReport is everything the workbook shows.
type ClientReport struct {
	Client        domain.Client
	TrainerName   string
	Routines      []domain.Routine
	Plans         []domain.Plan
	Progress      []domain.ProgressRecord
	FirstActivity *time.Time
	DaysTraining  int
	WeightChange  *float64
	GeneratedAt   time.Time
}

// FileName is the suggested download name for a client's workbook.
func FileName(client domain.Client, at time.Time) string {
	name := strings.ToLower(strings.Join(strings.Fields(client.Name), "_"))
	if name == "" {
		name = client.Username
	}
	return fmt.Sprintf("%s_%s.xlsx", name, at.Format("20060102"))
}

// Render builds the workbook and returns its bytes.
func Render(r ClientReport) ([]byte, error) {
	f, err := Build(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Build creates the workbook in memory. The caller closes it.
func Build(r ClientReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetRoutines, SheetPlans, SheetProgress} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	writeSummary(f, st, r)
	writeRoutines(f, st, r.Routines)
	writePlans(f, st, r.Plans)
	writeProgress(f, st, r.Progress)

	f.SetActiveSheet(0)
	return f, nil
}

type styles struct {
	title  int
	header int
	label  int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("title style: %w", err)
	}
	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: "1F4E79", Style: 2},
		},
	})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}
	st.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return st, fmt.Errorf("label style: %w", err)
	}
	return st, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func writeHeader(f *excelize.File, sheet string, style int, row int, titles ...string) {
	for i, title := range titles {
		name, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, name, title)
		f.SetCellStyle(sheet, name, name, style)
	}
}

func writeSummary(f *excelize.File, st styles, r ClientReport) {
	sheet := SheetSummary

	f.SetCellValue(sheet, "A1", "FICHA DEL CLIENTE")
	f.MergeCell(sheet, "A1", "B1")
	f.SetCellStyle(sheet, "A1", "B1", st.title)
	f.SetRowHeight(sheet, 1, 30)

	trainer := r.TrainerName
	if trainer == "" {
		trainer = "Sin asignar"
	}
	first := "-"
	if r.FirstActivity != nil {
		first = r.FirstActivity.Format(dateLayout)
	}
	change := "-"
	if r.WeightChange != nil {
		change = fmt.Sprintf("%+.1f kg", *r.WeightChange)
	}

	info := [][2]any{
		{"Nombre:", r.Client.Name},
		{"Usuario:", r.Client.Username},
		{"Objetivo:", r.Client.Goal},
		{"Estado inicial:", r.Client.InitialState},
		{"Entrenador:", trainer},
		{"Rutinas:", len(r.Routines)},
		{"Planes:", len(r.Plans)},
		{"Registros de progreso:", len(r.Progress)},
		{"Primera actividad:", first},
		{"Días entrenando:", r.DaysTraining},
		{"Cambio de peso:", change},
		{"Generado:", r.GeneratedAt.Format(dateLayout)},
	}
	for i, row := range info {
		n := i + 3
		f.SetCellValue(sheet, cell("A", n), row[0])
		f.SetCellValue(sheet, cell("B", n), row[1])
		f.SetCellStyle(sheet, cell("A", n), cell("A", n), st.label)
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 40)
}

func writeRoutines(f *excelize.File, st styles, routines []domain.Routine) {
	sheet := SheetRoutines
	writeHeader(f, sheet, st.header, 1, "Fecha", "Intensidad", "Origen", "Día", "Ejercicio", "Series", "Reps", "Nota")

	row := 2
	for _, r := range routines {
		origin := "Automática"
		if r.TrainerID != "" && r.Profile == "" {
			origin = "Entrenador"
		}
		for _, day := range orderedDays(r.Week) {
			for _, e := range r.Week[day] {
				f.SetCellValue(sheet, cell("A", row), r.CreatedAt.Format(dateLayout))
				f.SetCellValue(sheet, cell("B", row), r.Intensity)
				f.SetCellValue(sheet, cell("C", row), origin)
				f.SetCellValue(sheet, cell("D", row), day)
				f.SetCellValue(sheet, cell("E", row), e.Name)
				f.SetCellValue(sheet, cell("F", row), e.Sets)
				f.SetCellValue(sheet, cell("G", row), e.Reps)
				f.SetCellValue(sheet, cell("H", row), e.Note)
				row++
			}
		}
	}

	f.SetColWidth(sheet, "A", "D", 13)
	f.SetColWidth(sheet, "E", "E", 36)
	f.SetColWidth(sheet, "F", "G", 10)
	f.SetColWidth(sheet, "H", "H", 30)
}

func writePlans(f *excelize.File, st styles, plans []domain.Plan) {
	sheet := SheetPlans
	writeHeader(f, sheet, st.header, 1, "Fecha", "Calorías", "Comidas/día", "Comida", "Descripción", "Observaciones")

	row := 2
	for _, p := range plans {
		labels := generator.MealLabels(p.Meals)
		if len(labels) == 0 {
			labels = append(labels, "")
		}
		for _, label := range labels {
			f.SetCellValue(sheet, cell("A", row), p.CreatedAt.Format(dateLayout))
			f.SetCellValue(sheet, cell("B", row), p.DailyCalories)
			f.SetCellValue(sheet, cell("C", row), p.MealsPerDay)
			f.SetCellValue(sheet, cell("D", row), label)
			f.SetCellValue(sheet, cell("E", row), p.Meals[label])
			f.SetCellValue(sheet, cell("F", row), p.Observations)
			row++
		}
	}

	f.SetColWidth(sheet, "A", "D", 14)
	f.SetColWidth(sheet, "E", "F", 45)
}

func writeProgress(f *excelize.File, st styles, records []domain.ProgressRecord) {
	sheet := SheetProgress
	writeHeader(f, sheet, st.header, 1, "Fecha", "Peso (kg)", "Medidas", "Repeticiones", "Observaciones")

	for i, p := range records {
		row := i + 2
		f.SetCellValue(sheet, cell("A", row), p.RecordedAt.Format(dateLayout))
		if p.Weight > 0 {
			f.SetCellValue(sheet, cell("B", row), p.Weight)
		}
		f.SetCellValue(sheet, cell("C", row), joinFloats(p.Measurements))
		f.SetCellValue(sheet, cell("D", row), joinInts(p.Repetitions))
		f.SetCellValue(sheet, cell("E", row), p.Observations)
	}

	f.SetColWidth(sheet, "A", "B", 12)
	f.SetColWidth(sheet, "C", "E", 35)
}

// orderedDays lists the schedule's days Monday first, then any non-standard keys sorted.
func orderedDays(week domain.WeeklySchedule) []string {
	days := make([]string, 0, len(week))
	known := make(map[string]bool, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		known[d] = true
		if _, ok := week[d]; ok {
			days = append(days, d)
		}
	}
	var extra []string
	for d := range week {
		if !known[d] {
			extra = append(extra, d)
		}
	}
	sort.Strings(extra)
	return append(days, extra...)
}

func joinFloats(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %g", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func joinInts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, m[k]))
	}
	return strings.Join(parts, ", ")
}
