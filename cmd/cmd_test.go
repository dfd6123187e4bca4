package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"social-sentiment/pkg/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level=error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassifyCommand_Scores(t *testing.T) {
	out, err := execute(t, "classify", "0.3", "0.05", "0", "--", "-0.45")
	require.NoError(t, err)

	assert.Equal(t,
		"0.3\tExtremely Positive\n"+
			"0.05\tPositive\n"+
			"0\tNeutral\n"+
			"-0.45\tExtremely Negative\n",
		out)
}

func TestClassifyCommand_InvalidScore(t *testing.T) {
	_, err := execute(t, "classify", "very good")

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConfig))
}

func TestClassifyCommand_Text(t *testing.T) {
	out, err := execute(t, "classify", "--text", "I love this!", "This is a table.")
	require.NoError(t, err)

	assert.Equal(t, "I love this!\tExtremely Positive\nThis is a table.\tNeutral\n", out)
}

func writeConfig(t *testing.T, dir, input, results, chart string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`input:
  path: %q
output:
  resultsPath: %q
  chartPath: %q
  chartWidth: 640
  chartHeight: 480
scorer:
  type: vader
  precision: 4
`, input, results, chart)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "texts.txt")
	results := filepath.Join(dir, "results.txt")
	chart := filepath.Join(dir, "dist.svg")
	require.NoError(t, os.WriteFile(input, []byte("I love this!\n\nThis is a table.\n"), 0o644))
	cfgPath := writeConfig(t, dir, input, results, chart)

	out, err := execute(t, "analyze", "-c", cfgPath)
	require.NoError(t, err)

	expectedBlocks := "Text: I love this!\nSentiment: Extremely Positive\n--------------------\n" +
		"Text: This is a table.\nSentiment: Neutral\n--------------------\n"
	assert.Equal(t,
		"Sentiment Analysis Results:\n"+expectedBlocks+"Sentiment results saved to "+results+"\n",
		out)

	data, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Equal(t, expectedBlocks, string(data))
	assert.FileExists(t, chart)
}

func TestAnalyzeCommand_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "texts.txt")
	require.NoError(t, os.WriteFile(input, []byte("I hate this, it is terrible!\n"), 0o644))
	cfgPath := writeConfig(t, dir, filepath.Join(dir, "missing.txt"), filepath.Join(dir, "a.txt"), filepath.Join(dir, "a.png"))
	override := filepath.Join(dir, "b.txt")
	workbook := filepath.Join(dir, "report.xlsx")

	_, err := execute(t, "analyze", "-c", cfgPath, "-i", input, "-o", override, "--chart", "", "--workbook", workbook)
	require.NoError(t, err)

	data, err := os.ReadFile(override)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sentiment: Extremely Negative")
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "a.png"))
	assert.FileExists(t, workbook)
}

func TestAnalyzeCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "results.txt")
	chart := filepath.Join(dir, "dist.png")
	cfgPath := writeConfig(t, dir, filepath.Join(dir, "missing.txt"), results, chart)

	out, err := execute(t, "analyze", "-c", cfgPath)

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInputNotFound))
	assert.Empty(t, out)
	assert.NoFileExists(t, results)
	assert.NoFileExists(t, chart)
}

func TestAnalyzeCommand_ExplicitConfigMissing(t *testing.T) {
	_, err := execute(t, "analyze", "-c", filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAnalyzeCommand_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "texts.txt")
	results := filepath.Join(dir, "results.txt")
	require.NoError(t, os.WriteFile(input, []byte("fine\n"), 0o644))
	cfgPath := writeConfig(t, dir, input, results, filepath.Join(dir, "no", "such", "dist.png"))

	out, err := execute(t, "analyze", "-c", cfgPath)

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrRender))
	assert.False(t, errors.Is(err, model.ErrWrite))
	assert.FileExists(t, results)
	assert.Contains(t, out, "Sentiment results saved to "+results)
}

func TestRootCommand_NoArgsRunsAnalysis(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("social_media_texts.txt", []byte("I love this!\n"), 0o644))

	out, err := execute(t)
	require.NoError(t, err)

	expectedBlock := "Text: I love this!\nSentiment: Extremely Positive\n--------------------\n"
	assert.Equal(t,
		"Sentiment Analysis Results:\n"+expectedBlock+"Sentiment results saved to sentiment_results.txt\n",
		out)
	data, err := os.ReadFile(filepath.Join(dir, "sentiment_results.txt"))
	require.NoError(t, err)
	assert.Equal(t, expectedBlock, string(data))
	assert.FileExists(t, filepath.Join(dir, "sentiment_distribution.png"))
}

func TestRootCommand_NoArgsMissingInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t)

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInputNotFound))
	assert.Empty(t, out)
	assert.NoFileExists(t, filepath.Join(dir, "sentiment_results.txt"))
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, err := execute(t, "unexpected")
	assert.Error(t, err)
}

func TestAnalyzeAndHistory(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "texts.txt")
	dbPath := filepath.Join(dir, "db", "sentiment.duckdb")
	require.NoError(t, os.WriteFile(input, []byte("I love this!\nThis is a table.\nI love this!\n"), 0o644))
	cfgPath := writeConfig(t, dir, input, filepath.Join(dir, "results.txt"), "")

	_, err := execute(t, "analyze", "-c", cfgPath, "--duckdb", dbPath)
	require.NoError(t, err)

	out, err := execute(t, "history", "-c", cfgPath, "--duckdb", dbPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "3", fields[2])

	out, err = execute(t, "history", "-c", cfgPath, "--duckdb", dbPath, "--run", fields[0])
	require.NoError(t, err)
	assert.Equal(t, "Extremely Positive\t2\nNeutral\t1\n", out)
}

func TestHistoryCommand_NotConfigured(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, "in.txt", "out.txt", "")

	_, err := execute(t, "history", "-c", cfgPath)

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConfig))
}
