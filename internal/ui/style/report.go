package style

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rovshanmuradov/pumpcurve-monitor/internal/monitor"
)

// Separator closes every cycle block.
const Separator = "-------------------"

// ReportStyles holds the styles used for the cycle report.
type ReportStyles struct {
	Label     lipgloss.Style
	Price     lipgloss.Style
	MarketCap lipgloss.Style
	Address   lipgloss.Style
	Completed lipgloss.Style
	Pending   lipgloss.Style
	Error     lipgloss.Style
	States    map[monitor.Lifecycle]lipgloss.Style
}

// NewReportStyles builds report styles for the given renderer and palette.
func NewReportStyles(r *lipgloss.Renderer, palette Palette) ReportStyles {
	return ReportStyles{
		Label:     r.NewStyle().Foreground(palette.TextMuted),
		Price:     r.NewStyle().Foreground(palette.Primary).Bold(true),
		MarketCap: r.NewStyle().Foreground(palette.Text).Bold(true),
		Address:   r.NewStyle().Foreground(palette.Info),
		Completed: r.NewStyle().Foreground(palette.Success).Bold(true),
		Pending:   r.NewStyle().Foreground(palette.Warning),
		Error:     r.NewStyle().Foreground(palette.Error).Bold(true),
		States: map[monitor.Lifecycle]lipgloss.Style{
			monitor.LifecycleUnknown:    r.NewStyle().Foreground(palette.Unknown),
			monitor.LifecycleGraduating: r.NewStyle().Foreground(palette.Graduating).Bold(true),
			monitor.LifecycleGraduated:  r.NewStyle().Foreground(palette.Graduated).Bold(true),
		},
	}
}

// ReportWriter prints one block per poll cycle. It implements monitor.Reporter.
type ReportWriter struct {
	mu     sync.Mutex
	out    io.Writer
	styles ReportStyles
}

// NewReportWriter creates a writer whose color profile is detected from out.
func NewReportWriter(out io.Writer) *ReportWriter {
	renderer := lipgloss.NewRenderer(out)
	return &ReportWriter{
		out:    out,
		styles: NewReportStyles(renderer, DefaultPalette()),
	}
}

// Report prints the token state block.
func (w *ReportWriter) Report(state *monitor.TokenState) {
	if state == nil {
		return
	}
	s := w.styles

	completion := s.Pending.Render("Not Completed")
	if state.Curve != nil && state.Curve.Complete {
		completion = s.Completed.Render("Completed")
	}
	stateStyle, ok := s.States[state.State]
	if !ok {
		stateStyle = s.Label
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s%s\n", s.Label.Render("Price: $"), s.Price.Render(FormatPrice(state.Price)))
	fmt.Fprintf(&b, "%s%s\n", s.Label.Render("Market Cap: $"), s.MarketCap.Render(FormatThousands(state.MarketCap)))
	fmt.Fprintf(&b, "%s%s\n", s.Label.Render("Token Mint:              "), s.Address.Render(state.Mint.String()))
	fmt.Fprintf(&b, "%s%s\n", s.Label.Render("Associated Bonding Curve: "), s.Address.Render(state.BondingCurve.Address.String()))
	fmt.Fprintf(&b, "%s%s\n", s.Label.Render("Completion Status: "), completion)
	fmt.Fprintf(&b, "%s%s\n", s.Label.Render("State: "), stateStyle.Render(string(state.State)))
	b.WriteString(Separator + "\n")

	w.write(b.String())
}

// ReportError prints a failed cycle.
func (w *ReportWriter) ReportError(err error) {
	if err == nil {
		return
	}
	w.write(w.styles.Error.Render("Error in main loop:") + " " + err.Error() + "\n")
}

func (w *ReportWriter) write(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.out, s)
}

// FormatPrice prints a price in plain decimal notation.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatThousands prints v with comma grouping and at most three fraction digits.
// Non-finite values are printed as-is.
func FormatThousands(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	d := decimal.NewFromFloat(v).Round(3)
	s := d.Abs().String()

	intPart, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

var _ monitor.Reporter = (*ReportWriter)(nil)
