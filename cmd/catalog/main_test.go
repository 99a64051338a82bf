package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/usecase/report"
)

func testContext(buf *bytes.Buffer) context.Context {
	logger := logging.New(buf, slog.LevelInfo, logging.FormatText)
	return logging.WithLogger(context.Background(), logger)
}

func TestRun_YAMLReport(t *testing.T) {
	var logs, out bytes.Buffer
	cfg := config.Default()

	require.NoError(t, run(testContext(&logs), cfg, &out))

	var r report.Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &r))

	assert.Equal(t, "Vogue", r.TopPublisher)
	require.Len(t, r.Magazines, 3)
	assert.Equal(t, "New Title", r.Magazines[0].Name)
	assert.Equal(t, "Science", r.Magazines[0].Category)
	assert.Equal(t, []string{"How to wear a tutu with style", "Dating life in NYC"}, r.Magazines[1].ArticleTitles)
	assert.Equal(t, []string{"Carry Bradshaw"}, r.Magazines[1].ContributingAuthors)

	require.Len(t, r.Authors, 1)
	assert.Equal(t, "Carry Bradshaw", r.Authors[0].Name)
	assert.Equal(t, []string{"Vogue", "AD"}, r.Authors[0].Magazines)
	assert.Equal(t, []string{"Fashion", "Architecture"}, r.Authors[0].TopicAreas)
	assert.Len(t, r.Authors[0].ArticleTitles, 4)

	assert.Contains(t, logs.String(), "author rename rejected")
	assert.Contains(t, logs.String(), "magazine rename rejected")
	assert.Contains(t, logs.String(), "article retitle rejected")
	assert.NotContains(t, logs.String(), "change was accepted")
}

func TestRun_JSONReport(t *testing.T) {
	var logs, out bytes.Buffer
	cfg := config.Default()
	cfg.ReportFormat = report.FormatJSON

	require.NoError(t, run(testContext(&logs), cfg, &out))

	var r report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "Vogue", r.TopPublisher)
}

func TestRun_UnsupportedFormat(t *testing.T) {
	var logs, out bytes.Buffer
	cfg := config.Default()
	cfg.ReportFormat = "csv"

	err := run(testContext(&logs), cfg, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}
