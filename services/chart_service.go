package services

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/VShilovich/fitness-bot/models"
)

const (
	panelWidth  = 420
	panelHeight = 420
)

// ChartService draws the two-panel progress chart: water on the left,
// calories on the right. Purely presentational, no state is touched.
type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

// Render returns the chart as PNG bytes.
func (s *ChartService) Render(snap models.ProgressSnapshot) ([]byte, error) {
	water, err := renderPanel("Вода (мл)", []chart.Value{
		{Value: float64(snap.LoggedWaterML), Label: "Выпито"},
		{Value: float64(snap.WaterGoalML), Label: "Цель"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render water panel: %w", err)
	}

	calories, err := renderPanel("Калории (ккал)", []chart.Value{
		{Value: snap.LoggedCalories, Label: "Потреблено"},
		{Value: float64(snap.BurnedCalories), Label: "Сожжено"},
		{Value: float64(snap.CalorieGoal), Label: "Цель"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render calorie panel: %w", err)
	}

	return composeSideBySide(water, calories)
}

func renderPanel(title string, bars []chart.Value) (image.Image, error) {
	// go-chart refuses a zero value range, so give the axis explicit bounds
	// with headroom above the tallest bar.
	maxValue := 1.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}

	panel := chart.BarChart{
		Title:      title,
		Width:      panelWidth,
		Height:     panelHeight,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := panel.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func composeSideBySide(left, right image.Image) ([]byte, error) {
	lb, rb := left.Bounds(), right.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}

	out := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Over)
	draw.Draw(out, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode chart PNG: %w", err)
	}
	return buf.Bytes(), nil
}
