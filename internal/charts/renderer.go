package charts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Kind string

const (
	KindBar Kind = "bar"
	KindPie Kind = "pie"
)

const cacheTTLSeconds = 3600

var palette = []drawing.Color{
	drawing.ColorFromHex("2196F3"),
	drawing.ColorFromHex("4CAF50"),
	drawing.ColorFromHex("FFC107"),
}

// Renderer draws the progress charts as PNG. Results are cached per chart
// kind and ledger version, so an unchanged ledger is never drawn twice.
type Renderer struct {
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewRenderer(cacheSizeMB int, metricsManager *metrics.Manager) *Renderer {
	return &Renderer{
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		metricsManager: metricsManager,
	}
}

func cacheKey(kind Kind, version uint64) []byte {
	return []byte(fmt.Sprintf("chart:%s:%d", kind, version))
}

func (r *Renderer) Render(ctx context.Context, kind Kind, totals workouts.Totals, version uint64) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "charts.render")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := cacheKey(kind, version)
	if cached, err := r.cache.Get(key); err == nil {
		r.metricsManager.CounterChartCacheHits.Inc()
		return cached, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("chart cache get [%s]: %s", key, err)
	}

	start := time.Now()
	var png []byte
	switch kind {
	case KindBar:
		png, err = barChart(totals)
	case KindPie:
		png, err = pieChart(totals)
	default:
		return nil, fmt.Errorf("unknown chart kind [%s]", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s chart: %w", kind, err)
	}
	r.metricsManager.HistogramRenderDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())

	if err := r.cache.Set(key, png, cacheTTLSeconds); err != nil {
		// too large for the cache; still served
		log.Warnf("chart cache set [%s]: %s", key, err)
	}
	return png, nil
}

func colorAt(i int) drawing.Color {
	return palette[i%len(palette)]
}

func barChart(totals workouts.Totals) ([]byte, error) {
	categories := workouts.OrderedCategories(totals.PerCategory)
	if totals.TotalMinutes == 0 {
		return placeholder(600, 300, "No workout data logged yet.")
	}

	bars := make([]chart.Value, 0, len(categories))
	for i, c := range categories {
		bars = append(bars, chart.Value{
			Label: string(c),
			Value: float64(totals.PerCategory[c].TotalMinutes),
			Style: chart.Style{
				FillColor:   colorAt(i),
				StrokeColor: colorAt(i),
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:  "Total Minutes per Category",
		Width:  600,
		Height: 300,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 80,
		YAxis: chart.YAxis{
			Name: "Total Minutes",
		},
		Bars: bars,
	}

	buf := &bytes.Buffer{}
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pieChart shows only categories with logged minutes; colors stay bound to
// the category position so both charts agree.
func pieChart(totals workouts.Totals) ([]byte, error) {
	categories := workouts.OrderedCategories(totals.PerCategory)

	var values []chart.Value
	for i, c := range categories {
		minutes := totals.PerCategory[c].TotalMinutes
		if minutes <= 0 {
			continue
		}
		share := float64(minutes) / float64(totals.TotalMinutes) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", c, share),
			Value: float64(minutes),
			Style: chart.Style{
				FillColor:   colorAt(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		})
	}
	if len(values) == 0 {
		return placeholder(300, 300, "No data")
	}

	pie := chart.PieChart{
		Width:  300,
		Height: 300,
		Values: values,
	}

	buf := &bytes.Buffer{}
	if err := pie.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// placeholder draws a white canvas with a centered message.
func placeholder(width, height int, message string) ([]byte, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontSize(12)
	r.SetFontColor(drawing.ColorBlack)
	box := r.MeasureText(message)
	r.Text(message, (width-box.Width())/2, (height+box.Height())/2)

	buf := &bytes.Buffer{}
	if err := r.Save(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
