package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aaoifi-tools/standards-extractor/internal/progress"
)

type fakeExtractor struct {
	fn    func(path string, number int) ([]byte, error)
	calls int
}

func (f *fakeExtractor) ExtractStandard(ctx context.Context, path string, number int) ([]byte, error) {
	f.calls++
	return f.fn(path, number)
}

func goodPayload(number int) []byte {
	return []byte(fmt.Sprintf(`{"title":"معيار %d","text":"النص","sections":[{"sec_id":"1","heading":"المقدمة","text":"..."}],"keywords":["كلمة"],"aliases":[],"pages":["1","2"]}`, number))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	inputDir  string
	outputDir string
	store     *progress.Store
}

func newFixture(t *testing.T, names ...string) fixture {
	t.Helper()
	root := t.TempDir()
	inputDir := filepath.Join(root, "in")
	outputDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(inputDir, 0o755))
	require.NoError(t, os.MkdirAll(outputDir, 0o755))
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(inputDir, n), []byte("%PDF-1.4"), 0o644))
	}
	return fixture{
		inputDir:  inputDir,
		outputDir: outputDir,
		store:     progress.NewStore(filepath.Join(root, "progress.json"), testLogger()),
	}
}

func listJSON(t *testing.T, dir string) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	sort.Strings(paths)
	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return names
}

func TestRunProcessesAllFiles(t *testing.T) {
	fx := newFixture(t, "معيار (1) الأول.pdf", "معيار (2) الثاني.pdf")
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		return goodPayload(number), nil
	}}

	runner := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	summary, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)

	require.Equal(t, 2, summary.Total)
	require.Equal(t, 2, summary.NewlyProcessed)
	require.Empty(t, summary.Failed)
	require.ElementsMatch(t, []int{1, 2}, summary.Successful)
	require.Equal(t, []string{"SS01.json", "SS02.json"}, listJSON(t, fx.outputDir))
}

func TestRunIsIdempotentAcrossRuns(t *testing.T) {
	fx := newFixture(t, "معيار (1) الأول.pdf", "معيار (2) الثاني.pdf")
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		return goodPayload(number), nil
	}}

	runner := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	_, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)
	firstSet := listJSON(t, fx.outputDir)
	callsAfterFirst := ext.calls

	// Second run with no source changes: zero new files processed, output
	// file set unchanged, backend never called again.
	summary, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)
	require.Equal(t, 0, summary.NewlyProcessed)
	require.Equal(t, 2, summary.Skipped)
	require.Equal(t, callsAfterFirst, ext.calls)
	require.Equal(t, firstSet, listJSON(t, fx.outputDir))
}

func TestRunNoResumeReprocesses(t *testing.T) {
	fx := newFixture(t, "معيار (1) الأول.pdf")
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		return goodPayload(number), nil
	}}

	resuming := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	_, err := resuming.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)

	fresh := NewRunner(testLogger(), ext, fx.store, fx.outputDir, false)
	summary, err := fresh.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)
	require.Equal(t, 1, summary.NewlyProcessed)
	require.Equal(t, 0, summary.Skipped)
	require.Equal(t, 2, ext.calls)
}

func TestRunIsolatesPartialFailure(t *testing.T) {
	fx := newFixture(t, "معيار (1) الأول.pdf", "معيار (2) الثاني.pdf", "معيار (3) الثالث.pdf")
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		if number == 2 {
			return nil, errors.New("backend exhausted retries")
		}
		return goodPayload(number), nil
	}}

	runner := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	summary, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err, "a per-file failure must not abort the batch")

	require.ElementsMatch(t, []int{1, 3}, summary.Successful)
	require.Len(t, summary.Failed, 1)
	require.Equal(t, 2, summary.Failed[0].Number)
	require.NotEmpty(t, summary.Failed[0].Reason)
	require.Equal(t, []string{"SS01.json", "SS03.json"}, listJSON(t, fx.outputDir))

	// The failed standard is not recorded as completed.
	require.Equal(t, map[int]struct{}{1: {}, 3: {}}, fx.store.Load())
}

func TestRunRoutesUnidentifiableFilenameToFailed(t *testing.T) {
	fx := newFixture(t, "معيار المتاجرة في العملات.pdf")
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		t.Fatal("extractor must not be called for an unidentifiable filename")
		return nil, nil
	}}

	runner := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	summary, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)

	require.Len(t, summary.Failed, 1)
	require.Equal(t, 0, summary.Failed[0].Number)
	require.Empty(t, summary.Successful)
	require.Empty(t, listJSON(t, fx.outputDir))
}

func TestRunRejectsInvalidPayloadShape(t *testing.T) {
	fx := newFixture(t, "معيار (4) الرابع.pdf")
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		// sections as a single object, not a sequence
		return []byte(`{"title":"t","sections":{"sec_id":"1"}}`), nil
	}}

	runner := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	summary, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)

	require.Len(t, summary.Failed, 1)
	require.Equal(t, 4, summary.Failed[0].Number)
	require.Empty(t, listJSON(t, fx.outputDir), "invalid records must not be persisted")
}

func TestRunEmptyInputDir(t *testing.T) {
	fx := newFixture(t)
	ext := &fakeExtractor{fn: func(path string, number int) ([]byte, error) {
		return goodPayload(number), nil
	}}

	runner := NewRunner(testLogger(), ext, fx.store, fx.outputDir, true)
	summary, err := runner.Run(context.Background(), fx.inputDir)
	require.NoError(t, err)
	require.Equal(t, 0, summary.Total)
	require.Zero(t, ext.calls)
}
