package digest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/llm"
	"mvp90terminal/internal/view"
)

var reportTime = time.Date(2024, 1, 15, 15, 4, 5, 0, time.UTC)

func newGenerator() Generator {
	return Generator{Now: func() time.Time { return reportTime }}
}

func TestGenerateHTMLReport(t *testing.T) {
	r, err := newGenerator().Generate(context.Background(), catalog.Samples().Digest, DefaultOptions(), FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, "HTML report generated and downloaded!", r.Message)
	assert.True(t, strings.HasPrefix(r.Markdown, "# MVP90 LP Digest - Week of 1/15/2024\n\n## Executive Summary\n"+
		"This week's analysis covers 10 high-scoring startup opportunities, 5 emerging market trends, and 5 recommended build opportunities.\n"))
	for _, want := range []string{
		"## Top 10 Startup Ideas\n\n### 1. NeuroLink AI (Score: 9.2/10)\n**Category:** AI/ML\n",
		"### 10. VoiceDoc (Score: 7.1/10)",
		"### AI-First Healthcare Solutions (High Impact)\n",
		"**Affected Sectors:** HealthTech, AI/ML, Biotech\n",
		"### CropSense (High Priority)\n**Build Cost:** $75K | **Time to Market:** 12 months\n",
		"- **Sector Analysis:** AI/ML sector showing 92% momentum with $2.3B in funding (95% confidence)\n",
		"---\n*Generated by MVP90 Terminal on 1/15/2024, 3:04:05 PM*\n",
	} {
		assert.Contains(t, r.Markdown, want)
	}
}

func TestGeneratePDFAndUnknownFormat(t *testing.T) {
	g := newGenerator()
	g.Latency = catalog.Latency(time.Hour)

	_, err := g.Generate(context.Background(), catalog.Samples().Digest, DefaultOptions(), "docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	g.Latency = 0
	r, err := g.Generate(context.Background(), catalog.Samples().Digest, DefaultOptions(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "PDF report generated and downloaded!", r.Message)
	assert.Equal(t, reportTime, r.GeneratedAt)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	g := newGenerator()
	g.Latency = catalog.Latency(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Generate(ctx, catalog.Samples().Digest, DefaultOptions(), FormatHTML)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLastWeekShiftsHeadline(t *testing.T) {
	opts := DefaultOptions()
	opts.Week = WeekLast
	r, err := newGenerator().Generate(context.Background(), catalog.Samples().Digest, opts, FormatHTML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.Markdown, "# MVP90 LP Digest - Week of 1/8/2024\n"))

	opts.Week = "fortnight"
	_, err = newGenerator().Generate(context.Background(), catalog.Samples().Digest, opts, FormatHTML)
	assert.ErrorIs(t, err, ErrUnknownWeek)
}

func TestPreviewHidesReasoningWithoutDetails(t *testing.T) {
	p := NewPanel(catalog.Samples().Digest)
	full := p.Preview(reportTime)
	assert.Equal(t, "1/15/2024", full.WeekOf)
	assert.NotEmpty(t, full.Ideas[0].Reasoning)
	assert.Equal(t, 1, full.Ideas[0].Rank)
	assert.Equal(t, view.TierGood, full.Ideas[0].ScoreTier)
	assert.Equal(t, view.TierPoor, full.Ideas[9].ScoreTier)
	assert.Equal(t, view.ToneRed, full.Trends[0].ImpactTone)
	assert.Equal(t, view.ToneYellow, full.Builds[2].PriorityTone)
	assert.Nil(t, full.Report)

	require.NoError(t, p.SetOptions(Options{Week: WeekCurrent, IncludeCharts: false, IncludeDetails: false}))
	brief := p.Preview(reportTime)
	assert.Empty(t, brief.Ideas[0].Reasoning)
	assert.Empty(t, brief.Builds[0].Reasoning)
	assert.NotEmpty(t, p.Data().TopIdeas[0].Reasoning, "hiding details does not touch the data")

	assert.ErrorIs(t, p.SetOptions(Options{Week: "yesterday"}), ErrUnknownWeek)

	p.Record(Report{Format: FormatHTML, Message: "done"})
	require.NotNil(t, p.Preview(reportTime).Report)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	_, err = ParseFormat("PDF")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

type fakeChat struct {
	calls int
	reply string
	err   error
}

func (f *fakeChat) ChatCompletion(_ context.Context, _ llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatCompletionResponse{Choices: []llm.Choice{{Message: llm.Message{Role: "assistant", Content: f.reply}}}}, nil
}

func TestLLMSummarizerCachesPerDigest(t *testing.T) {
	chat := &fakeChat{reply: "A strong\n week for\tAI."}
	s := &LLMSummarizer{Client: chat, Model: "m", CacheTTL: time.Hour, Fallback: TemplateSummarizer{}}
	g := newGenerator()
	g.Summarizer = s

	r, err := g.Generate(context.Background(), catalog.Samples().Digest, DefaultOptions(), FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, r.Markdown, "## Executive Summary\nA strong week for AI.\n")

	_, err = g.Generate(context.Background(), catalog.Samples().Digest, DefaultOptions(), FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, 1, chat.calls)

	other := catalog.Samples().Digest
	other.TopIdeas = other.TopIdeas[:3]
	_, err = s.Summarize(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, 2, chat.calls)
}

func TestLLMSummarizerFallsBack(t *testing.T) {
	data := catalog.Samples().Digest
	want, err := TemplateSummarizer{}.Summarize(context.Background(), data)
	require.NoError(t, err)

	s := &LLMSummarizer{Client: &fakeChat{err: errors.New("boom")}, Model: "m", Fallback: TemplateSummarizer{}}
	got, err := s.Summarize(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	unconfigured := &LLMSummarizer{Fallback: TemplateSummarizer{}}
	got, err = unconfigured.Summarize(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	bare := &LLMSummarizer{Client: &fakeChat{err: errors.New("boom")}, Model: "m"}
	_, err = bare.Summarize(context.Background(), data)
	assert.EqualError(t, err, "boom")
}

func TestRenderTerminalKeepsReportText(t *testing.T) {
	r, err := newGenerator().Generate(context.Background(), catalog.Samples().Digest, DefaultOptions(), FormatHTML)
	require.NoError(t, err)

	out, err := RenderTerminal(r.Markdown, "notty", 100)
	require.NoError(t, err)
	assert.Contains(t, out, "Executive Summary")
	assert.Contains(t, out, "NeuroLink AI")
}
