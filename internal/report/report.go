package report

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/profile"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"

	"github.com/go-pdf/fpdf"
)

const (
	marginPt   = 50
	rowHeight  = 18
	gridLineWd = 0.5
)

var (
	tableHeader    = []string{"Category", "Exercise", "Duration(min)", "Calories(kcal)", "Date"}
	tableColWidths = []float64{80, 150, 80, 80, 80}
)

type Generator struct {
	metricsManager *metrics.Manager
}

func NewGenerator(metricsManager *metrics.Manager) *Generator {
	return &Generator{
		metricsManager: metricsManager,
	}
}

// FileName is the attachment name of the report for the given user.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "user"
	}
	return strings.ReplaceAll(name+"_weekly_report.pdf", " ", "_")
}

// Generate lays out the A4 report: user header, body metrics and one table
// row per logged entry, grouped by category.
func (g *Generator) Generate(ctx context.Context, p profile.UserProfile, entries map[workouts.Category][]workouts.Entry) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "report.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(marginPt, marginPt, marginPt)
	doc.SetAutoPageBreak(true, marginPt)
	doc.SetTitle(fmt.Sprintf("Weekly Fitness Report - %s", p.Name), true)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 20, tr(fmt.Sprintf("Weekly Fitness Report - %s", p.Name)), "", 1, "L", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 16, tr(fmt.Sprintf("Regn-ID: %s | Age: %d | Gender: %s", p.RegnID, p.Age, p.Gender)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 16, tr(fmt.Sprintf(
		"Height: %s cm | Weight: %s kg | BMI: %.1f | BMR: %.0f kcal/day",
		formatNumber(p.HeightCm), formatNumber(p.WeightKg), p.BMI, p.BMR,
	)), "", 1, "L", false, 0, "")
	doc.Ln(20)

	doc.SetLineWidth(gridLineWd)
	doc.SetDrawColor(0, 0, 0)
	doc.SetFillColor(173, 216, 230) // light blue
	doc.SetFont("Helvetica", "B", 10)
	for i, h := range tableHeader {
		doc.CellFormat(tableColWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	for _, c := range workouts.OrderedCategories(entries) {
		for _, e := range entries[c] {
			row := []string{
				string(c),
				e.Exercise,
				strconv.Itoa(e.Duration),
				formatCalories(e.Calories),
				e.Date(),
			}
			for i, cell := range row {
				doc.CellFormat(tableColWidths[i], rowHeight, tr(cell), "1", 0, "L", false, 0, "")
			}
			doc.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := doc.Output(buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	g.metricsManager.HistogramRenderDuration.WithLabelValues("pdf").Observe(time.Since(start).Seconds())
	return buf.Bytes(), nil
}

func formatCalories(kcal *float64) string {
	if kcal == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *kcal)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
