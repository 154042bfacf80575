// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package vector_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeErrors type-checks testdata/<dir>/main.go against the vector package
// sources and returns every type error.
func typeErrors(t *testing.T, dir string) []string {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checks dependencies from source")
	}
	path, err := filepath.Abs(filepath.Join("testdata", dir, "main.go"))
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, 0)
	require.NoError(t, err)

	var errs []string
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(err error) { errs = append(errs, err.Error()) },
	}
	_, _ = conf.Check("main", fset, []*ast.File{f}, nil)
	return errs
}

func TestGates_SignedAndFloatCallersCompile(t *testing.T) {
	assert.Empty(t, typeErrors(t, "negate_int"))
}

func TestGates_RejectMismatchedComponents(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"negate_uint", "does not satisfy vector.Signed"},
		{"magnitude_int", "does not satisfy constraints.Float"},
	}
	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			errs := typeErrors(t, tc.dir)
			require.NotEmpty(t, errs, "expected a type error")
			assert.Contains(t, strings.Join(errs, "\n"), tc.want)
		})
	}
}
