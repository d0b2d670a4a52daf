package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classdiag/internal/diagnostic"
)

func TestValidate_DefaultPolicyClean(t *testing.T) {
	diags := DefaultPolicy().Validate()

	assert.True(t, diags.IsValid())
	assert.NoError(t, diags.Error())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_BlankEntryIsError(t *testing.T) {
	policy := &Policy{SpecialBases: []string{"sync.Mutex", "   "}}

	diags := policy.Validate()

	assert.True(t, diags.HasErrors())
	require.Error(t, diags.Error())
	assert.Contains(t, diags.Error().Error(), "empty-rule")
}

func TestValidate_PaddedEntryIsError(t *testing.T) {
	policy := &Policy{SpecialInterfaces: []string{" fmt.Stringer"}}

	diags := policy.Validate()

	assert.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error().Error(), "padded-rule")
}

func TestValidate_DuplicateWarns(t *testing.T) {
	policy := &Policy{SpecialInterfaces: []string{"error", "error"}}

	diags := policy.Validate()

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "duplicate-rule", diags.Warnings[0].Code)
}

func TestValidate_MalformedPrefixIsError(t *testing.T) {
	policy := &Policy{FrameworkPrefixes: []string{"golang.org/x/"}}

	diags := policy.Validate()

	assert.True(t, diags.HasErrors())
	assert.Contains(t, diags.Error().Error(), "malformed-prefix")
}

func TestValidate_MergeCombinesRuns(t *testing.T) {
	var combined diagnostic.Diagnostics

	combined.Merge((&Policy{SpecialBases: []string{" "}}).Validate())
	combined.Merge((&Policy{SpecialInterfaces: []string{"error", "error"}}).Validate())

	assert.Len(t, combined.Errors, 1)
	assert.Len(t, combined.Warnings, 1)
	assert.True(t, combined.HasErrors())
}
