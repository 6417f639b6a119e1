// Package report aggregates permit rows into status summaries and renders
// them as JSON or HTML.
package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/civicdata/permit-geocoder/internal/models"
	"github.com/civicdata/permit-geocoder/internal/timeline"
)

//go:embed templates/summary.html.tmpl
var templates embed.FS

// StageSummary is the per-stage slice of a status summary.
type StageSummary struct {
	Stage      timeline.Stage `json:"stage"`
	Permits    int            `json:"permits"`
	TotalUnits int            `json:"total_units"`
}

// Summary is a point-in-time view of the permit pipeline: how many permits
// sit in each canonical stage and how much of the table has been geocoded.
type Summary struct {
	GeneratedAt  time.Time      `json:"generated_at"`
	TotalPermits int            `json:"total_permits"`
	Geocoded     int            `json:"geocoded"`
	Stages       []StageSummary `json:"stages"`
}

// Summarize classifies each permit's status into its canonical stage and
// aggregates counts and net units per stage, ordered by pipeline position
// with unknown statuses last. Stages with no permits are omitted.
func Summarize(permits []models.PermitDetail) Summary {
	type bucket struct {
		permits int
		units   int
	}
	buckets := make(map[timeline.Stage]*bucket)

	summary := Summary{
		GeneratedAt:  time.Now().UTC(),
		TotalPermits: len(permits),
	}

	for _, permit := range permits {
		stage := timeline.ClassifyStatus(permit.Status)
		b, ok := buckets[stage]
		if !ok {
			b = &bucket{}
			buckets[stage] = b
		}
		b.permits++
		b.units += permit.NetUnits

		if permit.Latitude != nil && permit.Longitude != nil {
			summary.Geocoded++
		}
	}

	for _, stage := range append(timeline.StageOrder(), timeline.StageUnknown) {
		if b, ok := buckets[stage]; ok {
			summary.Stages = append(summary.Stages, StageSummary{
				Stage:      stage,
				Permits:    b.permits,
				TotalUnits: b.units,
			})
		}
	}

	return summary
}

// WriteJSON renders the summary as indented JSON.
func WriteJSON(w io.Writer, summary Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// WriteHTML renders the summary with the embedded HTML template.
func WriteHTML(w io.Writer, summary Summary) error {
	tmpl, err := template.ParseFS(templates, "templates/summary.html.tmpl")
	if err != nil {
		return fmt.Errorf("failed to parse summary template: %w", err)
	}

	if err = tmpl.Execute(w, summary); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	return nil
}
