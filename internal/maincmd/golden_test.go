package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/internal/maincmd"
	"github.com/mna/mainer"
)

// These golden-file suites exercise the `tokenize`, `parse` and `evaluate`
// CLI commands end-to-end, diffing a testdata/in source file's output
// against a testdata/out/*.want (stdout) and *.err (stderr) pair via
// internal/filetest.
var (
	testUpdateTokenizeTests = flag.Bool("test.update-tokenize-tests", false, "If set, replace expected tokenize golden results with actual results.")
	testUpdateParseTests    = flag.Bool("test.update-parse-tests", false, "If set, replace expected parse golden results with actual results.")
	testUpdateEvaluateTests = flag.Bool("test.update-evaluate-tests", false, "If set, replace expected evaluate golden results with actual results.")
)

func runGolden(t *testing.T, run func(ctx context.Context, stdio mainer.Stdio, path string) error, cmdDir string, update *bool) {
	t.Helper()
	srcDir := filepath.Join("testdata", cmdDir, "in")
	resultDir := filepath.Join("testdata", cmdDir, "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var out, eout bytes.Buffer
			stdio := mainer.Stdio{Stdout: &out, Stderr: &eout}

			// the error return is reported via stderr by the command itself;
			// the golden diff below is the actual assertion.
			_ = run(context.Background(), stdio, filepath.Join(srcDir, fi.Name()))

			filetest.DiffCommand(t, fi, out.String(), eout.String(), resultDir, update)
		})
	}
}

func TestTokenizeGolden(t *testing.T) {
	var c maincmd.Cmd
	runGolden(t, func(ctx context.Context, stdio mainer.Stdio, path string) error {
		return c.Tokenize(ctx, stdio, []string{path})
	}, "tokenize", testUpdateTokenizeTests)
}

func TestParseGolden(t *testing.T) {
	var c maincmd.Cmd
	runGolden(t, func(ctx context.Context, stdio mainer.Stdio, path string) error {
		return c.Parse(ctx, stdio, []string{path})
	}, "parse", testUpdateParseTests)
}

func TestEvaluateGolden(t *testing.T) {
	var c maincmd.Cmd
	runGolden(t, func(ctx context.Context, stdio mainer.Stdio, path string) error {
		return c.Evaluate(ctx, stdio, []string{path})
	}, "evaluate", testUpdateEvaluateTests)
}
