// Package digest builds the weekly LP digest: a preview of the digest data
// and the markdown report handed to LPs on export.
package digest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/view"
)

var (
	// ErrUnknownFormat is returned for export formats other than html and pdf.
	ErrUnknownFormat = errors.New("unknown report format")
	// ErrUnknownWeek is returned for time periods outside current/last/custom.
	ErrUnknownWeek = errors.New("unknown report week")
)

// ExportRestricted is shown to roles that cannot export.
const ExportRestricted = "Export functionality is only available for Admin and Analyst roles."

// ScoreTiers buckets digest idea scores.
var ScoreTiers = view.Thresholds{Good: 8.5, Fair: 7.5}

// Format is an export target.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

var confirmations = map[Format]string{
	FormatHTML: "HTML report generated and downloaded!",
	FormatPDF:  "PDF report generated and downloaded!",
}

// ParseFormat validates an export format.
func ParseFormat(value string) (Format, error) {
	f := Format(value)
	if _, ok := confirmations[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
	return f, nil
}

// Week is the reporting period selector.
type Week string

const (
	WeekCurrent Week = "current"
	WeekLast    Week = "last"
	WeekCustom  Week = "custom"
)

// Options is the report configuration form.
type Options struct {
	Week           Week `json:"week"`
	IncludeCharts  bool `json:"includeCharts"`
	IncludeDetails bool `json:"includeDetails"`
}

// DefaultOptions is the form as first shown.
func DefaultOptions() Options {
	return Options{Week: WeekCurrent, IncludeCharts: true, IncludeDetails: true}
}

// Validate checks the week selector.
func (o Options) Validate() error {
	switch o.Week {
	case WeekCurrent, WeekLast, WeekCustom:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWeek, o.Week)
	}
}

// weekOf is the reference day of the period. Custom ranges have no bounds
// yet and report on the current week.
func (o Options) weekOf(now time.Time) time.Time {
	if o.Week == WeekLast {
		return now.AddDate(0, 0, -7)
	}
	return now
}

const (
	weekLayout   = "1/2/2006"
	footerLayout = "1/2/2006, 3:04:05 PM"
)

// Report is the outcome of an export.
type Report struct {
	Format      Format    `json:"format"`
	Markdown    string    `json:"markdown"`
	Message     string    `json:"message"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Generator assembles reports. The latency stands in for rendering time.
type Generator struct {
	Latency    catalog.Latency
	Summarizer Summarizer
	Now        func() time.Time
}

func (g Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// Generate waits the latency, writes the report and returns it with the
// confirmation for format. No file is produced.
func (g Generator) Generate(ctx context.Context, data intel.DigestData, opts Options, format Format) (Report, error) {
	message, ok := confirmations[format]
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := opts.Validate(); err != nil {
		return Report{}, err
	}
	if err := g.Latency.Wait(ctx); err != nil {
		return Report{}, err
	}

	summarizer := g.Summarizer
	if summarizer == nil {
		summarizer = TemplateSummarizer{}
	}
	summary, err := summarizer.Summarize(ctx, data)
	if err != nil {
		return Report{}, fmt.Errorf("digest: summarize: %w", err)
	}

	now := g.now()
	markdown, err := render(reportInput{
		WeekOf:    opts.weekOf(now).Format(weekLayout),
		Summary:   summary,
		Data:      data,
		Generated: now.Format(footerLayout),
	})
	if err != nil {
		return Report{}, err
	}

	return Report{Format: format, Markdown: markdown, Message: message, GeneratedAt: now}, nil
}

// IdeaCard is a preview row for a top idea.
type IdeaCard struct {
	intel.DigestIdea
	Rank      int       `json:"rank"`
	ScoreTier view.Tier `json:"scoreTier"`
}

// TrendCard is a preview row for an emerging trend.
type TrendCard struct {
	intel.EmergingTrend
	ImpactTone view.Tone `json:"impactTone"`
}

// BuildCard is a preview row for a suggested build.
type BuildCard struct {
	intel.SuggestedBuild
	PriorityTone view.Tone `json:"priorityTone"`
}

// Preview is what the digest panel renders before and after export.
type Preview struct {
	WeekOf   string                `json:"weekOf"`
	Options  Options               `json:"options"`
	Ideas    []IdeaCard            `json:"ideas"`
	Trends   []TrendCard           `json:"trends"`
	Builds   []BuildCard           `json:"builds"`
	Insights []intel.MarketInsight `json:"insights"`
	Report   *Report               `json:"report,omitempty"`
}

// Panel holds one session's digest form and last export.
type Panel struct {
	data    intel.DigestData
	options Options
	last    *Report
}

// NewPanel builds a panel with the default form.
func NewPanel(data intel.DigestData) *Panel {
	return &Panel{data: data, options: DefaultOptions()}
}

// Data returns the digest input.
func (p *Panel) Data() intel.DigestData { return p.data }

// Options returns the current form.
func (p *Panel) Options() Options { return p.options }

// SetOptions replaces the form after validation.
func (p *Panel) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	p.options = o
	return nil
}

// Record keeps r as the last generated report.
func (p *Panel) Record(r Report) { p.last = &r }

// Preview renders the panel as of now. Reasoning text is hidden unless the
// form asks for details.
func (p *Panel) Preview(now time.Time) Preview {
	details := p.options.IncludeDetails
	out := Preview{
		WeekOf:   p.options.weekOf(now).Format(weekLayout),
		Options:  p.options,
		Insights: slices.Clone(p.data.MarketInsights),
	}
	for i, idea := range p.data.TopIdeas {
		if !details {
			idea.Reasoning = ""
		}
		out.Ideas = append(out.Ideas, IdeaCard{DigestIdea: idea, Rank: i + 1, ScoreTier: ScoreTiers.Tier(idea.Score)})
	}
	for _, t := range p.data.EmergingTrends {
		out.Trends = append(out.Trends, TrendCard{EmergingTrend: t, ImpactTone: view.UrgencyPalette.Tone(string(t.Impact))})
	}
	for _, b := range p.data.SuggestedBuilds {
		if !details {
			b.Reasoning = ""
		}
		out.Builds = append(out.Builds, BuildCard{SuggestedBuild: b, PriorityTone: view.UrgencyPalette.Tone(string(b.Priority))})
	}
	if p.last != nil {
		r := *p.last
		out.Report = &r
	}
	return out
}
