package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("unknown_version", `schema version "2" is not supported`, "", "")
	d.AddInfo("unnamed_type", "skipped", "Point", "")
	d.AddError("member_not_found", `Person has no member "Nmae"`, "Person", "Nmae", "Name")

	var other Diagnostics
	other.AddError("missing_of", "shape as needs of", "Person", "Age")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"member_not_found", "missing_of", "unknown_version", "unnamed_type"}, d.Codes())
	assert.EqualError(t, d.Error(),
		`[Person] Nmae: [member_not_found] Person has no member "Nmae" (did you mean Name?); `+
			"[Person] Age: [missing_of] shape as needs of")
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[Point]: [c] m", Diagnostic{Code: "c", Message: "m", Type: "Point"}.String())
	assert.Equal(t, "X: m (did you mean A, B?)", Diagnostic{Message: "m", Member: "X", Suggestions: []string{"A", "B"}}.String())

	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
