package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Nazarious-ucu/weather-informer/internal/models"
)

const (
	dateLayout = "02.01.2006"
	ruleWidth  = 40
)

var rule = strings.Repeat("-", ruleWidth)

// Renderer writes the human readable forecast report.
type Renderer struct {
	loc     models.Location
	verbose bool
	now     func() time.Time
}

// NewRenderer prepares a renderer for loc. With verbose set the raw payload
// is echoed ahead of the report. A nil now falls back to time.Now.
func NewRenderer(loc models.Location, verbose bool, now func() time.Time) *Renderer {
	if now == nil {
		now = time.Now
	}
	return &Renderer{loc: loc, verbose: verbose, now: now}
}

// Render writes the report for snap and avg to w in a single write.
func (r *Renderer) Render(w io.Writer, snap models.Snapshot, avg float64) error {
	var buf bytes.Buffer

	if r.verbose {
		writeEcho(&buf, snap.Raw)
	}

	var info models.Info
	if snap.Info != nil {
		info = *snap.Info
	}
	var fact models.Fact
	if snap.Fact != nil {
		fact = *snap.Fact
	}

	writeRule(&buf)
	fmt.Fprintf(&buf, "Today %s\n", r.now().Format(dateLayout))
	fmt.Fprintf(&buf, "In the N-city (%f, %f) %s\n", r.loc.Latitude, r.loc.Longitude, fact.Season)
	fmt.Fprintf(&buf, "Temperature: %s°C, %s\n", fact.Temp, fact.Condition)
	fmt.Fprintf(&buf, "(more info here: %s)\n", info.URL)

	writeRule(&buf)
	fmt.Fprintf(&buf, "Average temperature for the next %d days: %.2f°C\n", len(snap.Forecasts), avg)
	writeRule(&buf)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeEcho(buf *bytes.Buffer, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	if err := json.Compact(buf, raw); err != nil {
		buf.Write(bytes.TrimSpace(raw))
	}
	buf.WriteByte('\n')
}

func writeRule(buf *bytes.Buffer) {
	buf.WriteString("\n" + rule + "\n")
}
