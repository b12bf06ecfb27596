package store

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/san-kum/ljeopp/internal/analysis"
)

// CurveSVG draws V(r) as a polyline. Energies above ylimit are clipped
// when ylimit > 0, which keeps the repulsive wall from flattening the tail.
func CurveSVG(points []analysis.Point, width, height int, ylimit float64, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Energy
		if ylimit > 0 {
			ys[i] = math.Max(-ylimit, math.Min(ylimit, ys[i]))
		}
	}

	minX, maxX := points[0].R, points[len(points)-1].R
	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	toX := func(r float64) float64 { return (r - minX) / rangeX * float64(width) }
	toY := func(v float64) float64 { return float64(height) - (v-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if minY < 0 && maxY > 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444444" stroke-width="1"/>
`, toY(0), width, toY(0)))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.R), toY(ys[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p.R), toY(ys[i])))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func ExportSVG(path string, points []analysis.Point, ylimit float64) error {
	svg := CurveSVG(points, 800, 400, ylimit, "#5fd7d7")
	if svg == "" {
		return fmt.Errorf("need at least 2 points, got %d", len(points))
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
