// Package main provides cdump, a debug host for the lexer and AST layers:
// it tokenizes a C11/C17 source file and prints the resulting tokens and
// diagnostics. There is no parser in this module, so cdump cannot build
// or dump an AST from source directly; --ast exercises the AST layer by
// building and dumping the canonical "int main(void) { return 0; }"
// sample tree instead of parsing the given file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taogeice/cfront/internal/ast"
	"github.com/taogeice/cfront/internal/diag"
	"github.com/taogeice/cfront/internal/lexer"
	"github.com/taogeice/cfront/internal/source"
	"github.com/taogeice/cfront/internal/token"
)

const (
	exitOK       = 0
	exitLexError = 1
	exitInternal = 2
)

type cliOptions struct {
	stdin            bool
	assumeFilename   string
	preserveComments bool
	showLocation     bool
	showTypes        bool
	colorOutput      bool
	dumpAST          bool
	path             string
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "cdump: %v\n\n%s", err, usage)
		return exitInternal
	}

	if opts.dumpAST {
		writeString(stdout, ast.Dump(sampleTranslationUnit(), ast.DumperOptions{
			ShowLocation: opts.showLocation,
			ShowTypes:    opts.showTypes,
			ColorOutput:  opts.colorOutput,
		}))
		return exitOK
	}

	src, filename, err := readInput(stdin, opts)
	if err != nil {
		writef(stderr, "cdump: %v\n", err)
		return exitInternal
	}

	mem := diag.NewMemoryConsumer()
	engine := diag.NewEngine(mem)
	lx := lexer.New(src, filename, engine)
	lx.SetPreserveComments(opts.preserveComments)

	tokens := lx.Tokenize()
	_ = ctx

	for i, tok := range tokens {
		writef(stdout, "[%d] %s %q @ %s\n", i, tok.Kind, tok.Lexeme, tok.Location)
	}
	for _, line := range mem.Lines() {
		writef(stderr, "%s\n", line)
	}

	if engine.ErrorCount() > 0 {
		return exitLexError
	}
	return exitOK
}

// sampleTranslationUnit builds the tree for the canonical
// "int main(void) { return 0; }" program directly through the Builder,
// standing in for a parser this module does not implement.
func sampleTranslationUnit() *ast.TranslationUnit {
	b := ast.NewBuilder(diag.NewEngine(nil))
	loc := source.NewLocation("sample.c", 1, 1, 0)

	intType := b.CreateBasicType(loc, ast.BasicInt, false, false, false, false)
	compound := b.CreateCompoundStatement(loc)
	zero, _ := b.CreateLiteralExpression(loc, token.Token{Kind: token.IntegerLiteral, Lexeme: "0", Location: loc})
	b.AddStmtToCompound(compound, b.CreateReturnStatement(loc, zero))
	b.AddFunctionDeclaration(loc, "main", ast.StorageNone, intType, nil, compound)
	return b.Root()
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("cdump", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.stdin, "stdin", false, "read input from stdin")
	fs.StringVar(&opts.assumeFilename, "assume-filename", "", "filename used for diagnostics when reading stdin")
	fs.BoolVar(&opts.preserveComments, "preserve-comments", false, "emit Comment tokens instead of discarding them")
	fs.BoolVar(&opts.showLocation, "show-location", false, "append source locations to AST dump lines")
	fs.BoolVar(&opts.showTypes, "show-types", false, "append expression type annotations to AST dump lines")
	fs.BoolVar(&opts.colorOutput, "color", false, "colorize AST dump output")
	fs.BoolVar(&opts.dumpAST, "ast", false, "dump the canonical sample AST instead of tokenizing a file")

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	rest := fs.Args()
	if opts.dumpAST {
		return opts, usage, nil
	}
	switch {
	case opts.stdin && len(rest) > 0:
		return cliOptions{}, usage, errors.New("positional file path is not allowed with --stdin")
	case !opts.stdin && len(rest) != 1:
		return cliOptions{}, usage, errors.New("exactly one input file path is required (or use --stdin)")
	}
	if !opts.stdin {
		opts.path = rest[0]
	}
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  cdump [flags] path/to/file.c\n")
	b.WriteString("  cdump --stdin [--assume-filename foo.c] [flags]\n")
	b.WriteString("  cdump --ast [--show-location] [--show-types] [--color]\n\n")
	b.WriteString("Flags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func readInput(stdin io.Reader, opts cliOptions) ([]byte, string, error) {
	if opts.stdin {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		filename := opts.assumeFilename
		if filename == "" {
			filename = "stdin.c"
		}
		return src, filename, nil
	}
	//nolint:gosec // CLI intentionally reads a user-provided file path.
	src, err := os.ReadFile(opts.path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", opts.path, err)
	}
	return src, opts.path, nil
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = io.WriteString(w, fmt.Sprintf(format, args...))
}

func writeString(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
