package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classdiag/internal/analyze"
	"classdiag/internal/filter"
)

// TestRender_AnalyzedPackage runs the full pipeline over the in-repo
// sample package and pins the exact diagram text.
func TestRender_AnalyzedPackage(t *testing.T) {
	model, err := analyze.NewAnalyzer().LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	out := Render(model, filter.DefaultPolicy())

	expected := "classDiagram\n" +
		"    class Barker {\n" +
		"        <<interface>>\n" +
		"    }\n" +
		"    class Animal {\n" +
		"        -string name\n" +
		"        +int Age\n" +
		"    }\n" +
		"    class Dog {\n" +
		"        +string Breed\n" +
		"        +string Bark()\n" +
		"    }\n" +
		"    class Keeper\n" +
		"    class Mood {\n" +
		"        <<enumeration>>\n" +
		"    }\n" +
		"    Barker <|.. Dog\n" +
		"    Animal <|-- Dog\n"
	assert.Equal(t, expected, out)
}

// TestRender_AnalyzedPackageDeterministic renders two independent
// analyses of the same package and expects byte-identical text.
func TestRender_AnalyzedPackageDeterministic(t *testing.T) {
	policy := filter.DefaultPolicy()

	first, err := analyze.NewAnalyzer().LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	second, err := analyze.NewAnalyzer().LoadPackages("classdiag/zoo")
	require.NoError(t, err)

	assert.Equal(t, Render(first, policy), Render(second, policy))
}
