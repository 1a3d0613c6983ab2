package rewrite_test

import (
	"os"
	"path"
	"testing"

	"github.com/robgonnella/bumpver/internal/rewrite"
	"github.com/stretchr/testify/assert"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	file := path.Join(t.TempDir(), "target.py")

	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %s", err.Error())
	}

	return file
}

func TestLocate(t *testing.T) {
	pattern, err := rewrite.CompilePattern(rewrite.DefaultPattern)

	assert.NoError(t, err)

	t.Run("locates a dunder assignment", func(st *testing.T) {
		content := []byte("import os\n\n__version__ = \"0.1.0\"\n")

		match, err := rewrite.Locate(content, pattern)

		assert.NoError(st, err)
		assert.Equal(st, 2, match.Line)
		assert.Equal(st, "0.1.0", match.Value)
	})

	t.Run("locates an indented assignment with trailing comma", func(st *testing.T) {
		content := []byte("setup(\n   version       = \"0.1.0\",\n)\n")

		match, err := rewrite.Locate(content, pattern)

		assert.NoError(st, err)
		assert.Equal(st, 1, match.Line)
		assert.Equal(st, "0.1.0", match.Value)
	})

	t.Run("returns ErrNoMatch when nothing matches", func(st *testing.T) {
		content := []byte("VERSION = '0.1.0'\nrelease = \"0.1.0\"\n")

		_, err := rewrite.Locate(content, pattern)

		assert.ErrorIs(st, err, rewrite.ErrNoMatch)
	})

	t.Run("returns ErrAmbiguousMatch for multiple matches", func(st *testing.T) {
		content := []byte("version = '0.1.0'\n__version__ = '0.1.0'\n")

		_, err := rewrite.Locate(content, pattern)

		assert.ErrorIs(st, err, rewrite.ErrAmbiguousMatch)
	})
}

func TestSubstitute(t *testing.T) {
	pattern, _ := rewrite.CompilePattern(rewrite.DefaultPattern)

	t.Run("normalizes single quotes to double quotes", func(st *testing.T) {
		content := []byte("version = '0.1.0'\n")

		match, err := rewrite.Locate(content, pattern)

		assert.NoError(st, err)

		updated := rewrite.Substitute(content, match, "0.2.0")

		assert.Equal(st, "version = \"0.2.0\"\n", string(updated))
	})

	t.Run("preserves indentation and trailing punctuation", func(st *testing.T) {
		content := []byte("setup(\n   version       = \"0.1.0\",\n)\n")

		match, err := rewrite.Locate(content, pattern)

		assert.NoError(st, err)

		updated := rewrite.Substitute(content, match, "0.2.0")

		assert.Equal(st, "setup(\n   version       = \"0.2.0\",\n)\n", string(updated))
	})

	t.Run("leaves other lines untouched", func(st *testing.T) {
		content := []byte("# release tooling\n__version__ = \"1.0.0\"\nname = \"x\"\n")

		match, err := rewrite.Locate(content, pattern)

		assert.NoError(st, err)

		updated := rewrite.Substitute(content, match, "1.0.1")

		assert.Equal(
			st,
			"# release tooling\n__version__ = \"1.0.1\"\nname = \"x\"\n",
			string(updated),
		)
	})
}

func TestRewriteFile(t *testing.T) {
	pattern, _ := rewrite.CompilePattern(rewrite.DefaultPattern)

	t.Run("rewrites file in place", func(st *testing.T) {
		file := writeTempFile(st, "__version__ = '0.1.0'\n")

		rewriter := rewrite.NewRewriter(false)

		old, err := rewriter.RewriteFile(file, pattern, "0.2.0")

		assert.NoError(st, err)
		assert.Equal(st, "0.1.0", old)

		content, _ := os.ReadFile(file)

		assert.Equal(st, "__version__ = \"0.2.0\"\n", string(content))
	})

	t.Run("leaves file unchanged on no match", func(st *testing.T) {
		original := "release = '0.1.0'\n"

		file := writeTempFile(st, original)

		rewriter := rewrite.NewRewriter(false)

		_, err := rewriter.RewriteFile(file, pattern, "0.2.0")

		assert.ErrorIs(st, err, rewrite.ErrNoMatch)

		content, _ := os.ReadFile(file)

		assert.Equal(st, original, string(content))
	})

	t.Run("dry run never writes", func(st *testing.T) {
		original := "__version__ = '0.1.0'\n"

		file := writeTempFile(st, original)

		rewriter := rewrite.NewRewriter(true)

		old, err := rewriter.RewriteFile(file, pattern, "0.2.0")

		assert.NoError(st, err)
		assert.Equal(st, "0.1.0", old)

		content, _ := os.ReadFile(file)

		assert.Equal(st, original, string(content))
	})
}

func TestVersionFile(t *testing.T) {
	t.Run("writes bare version with trailing newline", func(st *testing.T) {
		file := path.Join(t.TempDir(), "VERSION")

		rewriter := rewrite.NewRewriter(false)

		err := rewriter.WriteVersionFile(file, "1.2.3")

		assert.NoError(st, err)

		content, _ := os.ReadFile(file)

		assert.Equal(st, "1.2.3\n", string(content))
	})

	t.Run("read strips trailing newline only", func(st *testing.T) {
		file := writeTempFile(st, "1.2.3-pre1\n")

		version, err := rewrite.ReadVersionFile(file)

		assert.NoError(st, err)
		assert.Equal(st, "1.2.3-pre1", version)
	})

	t.Run("dry run write does not create file", func(st *testing.T) {
		file := path.Join(t.TempDir(), "VERSION")

		rewriter := rewrite.NewRewriter(true)

		err := rewriter.WriteVersionFile(file, "1.2.3")

		assert.NoError(st, err)

		_, statErr := os.Stat(file)

		assert.True(st, os.IsNotExist(statErr))
	})
}

func TestCompilePattern(t *testing.T) {
	t.Run("rejects patterns with wrong group shape", func(st *testing.T) {
		_, err := rewrite.CompilePattern(`^version = (.*)$`)

		assert.Error(st, err)
	})

	t.Run("rejects invalid regular expressions", func(st *testing.T) {
		_, err := rewrite.CompilePattern(`^version = ([`)

		assert.Error(st, err)
	})
}
