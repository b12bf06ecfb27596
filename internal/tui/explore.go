package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ljeopp/internal/analysis"
	"github.com/san-kum/ljeopp/internal/pair"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type param struct {
	name string
	step float64
}

var params = []param{
	{"c1", 50},
	{"n1", 0.5},
	{"c2", 5},
	{"n2", 0.5},
	{"kstar", 0.05},
	{"phistar", 0.1},
	{"cutoff", 0.5},
	{"rmin", 0.1},
}

type explorer struct {
	values map[string]float64
	shift  bool
	mix    pair.MixMode

	cursor  int
	editing bool
	editBuf string

	derived pair.Derived
	points  []analysis.Point
	err     error

	width  int
	height int
}

// NewExplorer starts from the like-pair coefficients c under settings s.
func NewExplorer(c pair.Coeff, s pair.Settings) *explorer {
	cut := c.Cutoff
	if cut == 0 {
		cut = s.Cutoff
	}
	m := &explorer{
		values: map[string]float64{
			"c1": c.C1, "n1": c.N1, "c2": c.C2, "n2": c.N2,
			"kstar": c.KStar, "phistar": c.PhiStar,
			"cutoff": cut, "rmin": 0.8,
		},
		shift:  s.Shift,
		mix:    s.Mix,
		width:  80,
		height: 24,
	}
	m.rebuild()
	return m
}

func (m *explorer) rebuild() {
	m.points = nil
	tbl, err := pair.NewTable(1, pair.Settings{Cutoff: m.values["cutoff"], Shift: m.shift, Mix: m.mix})
	if err != nil {
		m.err = err
		return
	}
	c := pair.Coeff{
		Epsilon: 1, Sigma: 1,
		C1: m.values["c1"], N1: m.values["n1"],
		C2: m.values["c2"], N2: m.values["n2"],
		KStar: m.values["kstar"], PhiStar: m.values["phistar"],
	}
	if err := tbl.SetCoeff(1, 1, c); err != nil {
		m.err = err
		return
	}
	if _, err := tbl.Init(); err != nil {
		m.err = err
		return
	}
	d, err := tbl.Derived(1, 1)
	if err != nil {
		m.err = err
		return
	}
	points, err := analysis.Tabulate(&d, m.values["rmin"], d.Cutoff, 120)
	if err != nil {
		m.err = err
		return
	}
	m.derived = d
	m.points = points
	m.err = nil
}

func (m explorer) Init() tea.Cmd { return nil }

func (m explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m explorer) handleKey(msg tea.KeyMsg) (explorer, tea.Cmd) {
	name := params[m.cursor].name
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.values[name] = v
				m.rebuild()
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		m.values[name] -= params[m.cursor].step
		m.rebuild()
	case "right", "l":
		m.values[name] += params[m.cursor].step
		m.rebuild()
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.values[name], 'g', -1, 64)
	case "s":
		m.shift = !m.shift
		m.rebuild()
	}
	return m, nil
}

func (m explorer) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("l j / e o p p") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, p := range params {
		val := fmt.Sprintf("%10.4g", m.values[p.name])
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", p.name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", p.name)) + dim.Render(val) + "\n")
		}
	}
	shift := yellow.Render("off")
	if m.shift {
		shift = green.Render("on")
	}
	b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", "shift")) + shift + "\n\n")

	if m.err != nil {
		b.WriteString("   " + red.Render(m.err.Error()) + "\n")
	} else {
		b.WriteString(m.viewCurve())
	}

	b.WriteString("\n" + dim.Render("   ↑↓ select  ←→ adjust  enter edit  s shift  q quit") + "\n")
	return b.String()
}

func (m explorer) viewCurve() string {
	var b strings.Builder
	d := m.derived

	energies := analysis.Energies(m.points)
	// Clip the repulsive wall so the tail stays visible.
	clip := 4 * math.Abs(d.EnergyCoeffB) / math.Pow(m.values["rmin"]+1, d.N2)
	if clip == 0 {
		clip = 1
	}
	plot := make([]float64, len(energies))
	for i, e := range energies {
		plot[i] = math.Max(-clip, math.Min(clip, e))
	}

	width := m.width - 20
	if width < 40 {
		width = 40
	}
	graph := asciigraph.Plot(plot,
		asciigraph.Height(max(m.height-len(params)-16, 8)),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("V(r), r in [%.2f, %.2f]", m.values["rmin"], d.Cutoff)),
	)
	b.WriteString(graph + "\n\n")

	b.WriteString(fmt.Sprintf("   %s %s  %s %s  %s %s\n",
		dim.Render("A"), white.Render(fmt.Sprintf("%.4g", d.ForceCoeffA)),
		dim.Render("B"), white.Render(fmt.Sprintf("%.4g", d.ForceCoeffB)),
		dim.Render("offset"), white.Render(fmt.Sprintf("%.4g", d.EnergyOffset))))
	if well, ok := analysis.Minimum(m.points); ok {
		b.WriteString(fmt.Sprintf("   %s %s  %s %s\n",
			dim.Render("well r"), cyan.Render(fmt.Sprintf("%.4f", well.R)),
			dim.Render("V"), cyan.Render(fmt.Sprintf("%.5g", well.Energy))))
	}
	return b.String()
}

func RunExplorer(c pair.Coeff, s pair.Settings) error {
	p := tea.NewProgram(NewExplorer(c, s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
