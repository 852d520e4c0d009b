package standingsservice

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	barWidth   = 40
	barSpacing = 20
)

// RenderChart produces a PNG bar chart of wins per participant. The leaders are drawn
// in the accent color.
func RenderChart(view *StandingsView, palette ChartPalette) ([]byte, error) {
	maxWins := 0
	for _, r := range view.Rows {
		maxWins = max(maxWins, r.Wins)
	}
	if maxWins == 0 {
		return renderNoDataPlaceholder(palette, "No wins recorded yet")
	}

	bars := make([]chart.Value, 0, len(view.Rows))
	for _, r := range view.Rows {
		fill := drawing.ColorFromHex(palette.Bar)
		if r.Wins == maxWins {
			fill = drawing.ColorFromHex(palette.Accent)
		}
		bars = append(bars, chart.Value{
			Label: r.Name,
			Value: float64(r.Wins),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}

	graph := chart.BarChart{
		Title: view.CompetitionTitle,
		TitleStyle: chart.Style{
			FontColor: drawing.ColorFromHex(palette.Text),
		},
		Width:      max(400, 100+(barWidth+barSpacing)*len(bars)),
		Height:     400,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: drawing.ColorFromHex(palette.Background),
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: drawing.ColorFromHex(palette.Background),
		},
		XAxis: chart.Style{
			FontColor: drawing.ColorFromHex(palette.Text),
		},
		YAxis: chart.YAxis{
			Name: "Wins",
			Style: chart.Style{
				FontColor: drawing.ColorFromHex(palette.Text),
			},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxWins)},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render standings chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws msg centered on an empty canvas. chart.Chart refuses
// to render without a series, so this goes straight to the renderer.
func renderNoDataPlaceholder(palette ChartPalette, msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(drawing.ColorFromHex(palette.Background))
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(drawing.ColorFromHex(palette.Text))
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
