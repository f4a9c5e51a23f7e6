package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRequiresExactlyOnePath(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(context.Background(), strings.NewReader(""), &out, &errb, nil)
	if code != exitInternal {
		t.Fatalf("exit code = %d, want %d", code, exitInternal)
	}
	if !strings.Contains(errb.String(), "exactly one input file path") {
		t.Fatalf("stderr missing usage message: %q", errb.String())
	}
}

func TestRunTokenizesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "x.c")
	if err := os.WriteFile(path, []byte("int x = 1;\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(context.Background(), strings.NewReader(""), &out, &errb, []string{path})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%s", code, exitOK, errb.String())
	}
	if !strings.Contains(out.String(), `IntegerLiteral "1"`) {
		t.Errorf("expected tokenized output to contain the integer literal, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "EOF") {
		t.Errorf("expected tokenized output to end with EOF, got:\n%s", out.String())
	}
}

func TestRunReadsFromStdin(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(context.Background(), strings.NewReader("int main(void) { return 0; }\n"), &out, &errb, []string{"--stdin"})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%s", code, exitOK, errb.String())
	}
	if !strings.Contains(out.String(), `return "return"`) {
		t.Errorf("expected stdin tokenization to include the return keyword, got:\n%s", out.String())
	}
}

func TestRunReportsLexErrorExitCode(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(context.Background(), strings.NewReader(`"unterminated`), &out, &errb, []string{"--stdin"})
	if code != exitLexError {
		t.Fatalf("exit code = %d, want %d", code, exitLexError)
	}
	if errb.Len() == 0 {
		t.Errorf("expected a diagnostic on stderr for an unterminated string")
	}
}

func TestRunDumpsSampleAST(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(context.Background(), strings.NewReader(""), &out, &errb, []string{"--ast"})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%s", code, exitOK, errb.String())
	}
	if !strings.Contains(out.String(), "FunctionDeclaration: 'main'") {
		t.Errorf("expected AST dump to contain the sample function, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "=== Total:") {
		t.Errorf("expected AST dump footer, got:\n%s", out.String())
	}
}
