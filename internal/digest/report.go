package digest

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"mvp90terminal/internal/intel"
)

type reportInput struct {
	WeekOf    string
	Summary   string
	Data      intel.DigestData
	Generated string
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"score": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"join":  strings.Join,
}).Parse(`# MVP90 LP Digest - Week of {{.WeekOf}}

## Executive Summary
{{.Summary}}

## Top 10 Startup Ideas
{{range $i, $idea := .Data.TopIdeas}}
### {{inc $i}}. {{$idea.Name}} (Score: {{score $idea.Score}}/10)
**Category:** {{$idea.Category}}
**Description:** {{$idea.Description}}
**Investment Reasoning:** {{$idea.Reasoning}}
{{end}}
## Emerging Trends
{{range .Data.EmergingTrends}}
### {{.Trend}} ({{.Impact}} Impact)
{{.Description}}
**Affected Sectors:** {{join .Sectors ", "}}
{{end}}
## Suggested Builds
{{range .Data.SuggestedBuilds}}
### {{.Name}} ({{.Priority}} Priority)
**Build Cost:** {{.BuildCost}} | **Time to Market:** {{.TimeToMarket}}
**Reasoning:** {{.Reasoning}}
{{end}}
## Market Insights
{{range .Data.MarketInsights}}
- **{{.Category}}:** {{.Insight}} ({{.Confidence}}% confidence)
{{end}}
---
*Generated by MVP90 Terminal on {{.Generated}}*
`))

func render(in reportInput) (string, error) {
	var b strings.Builder
	if err := reportTemplate.Execute(&b, in); err != nil {
		return "", fmt.Errorf("digest: render report: %w", err)
	}
	return b.String(), nil
}
