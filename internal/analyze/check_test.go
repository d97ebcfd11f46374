package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize/internal/diagnostic"
	"github.com/weichx/cerialize/schema"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestCheck(t *testing.T) {
	graph := loadShop(t)

	tests := []struct {
		name        string
		yaml        string
		errors      []string
		suggestions []string
	}{
		{
			name: "valid",
			yaml: "types:\n  - type: Product\n    inherit: Base\n    members:\n      - name: ID\n      - name: Tags\n        shape: array\n        of: string\n",
		},
		{
			name:        "unknown type",
			yaml:        "types:\n  - type: Prodcut\n",
			errors:      []string{"type_not_found"},
			suggestions: []string{"Product"},
		},
		{
			name:        "unknown inherit",
			yaml:        "types:\n  - type: Product\n    inherit: Bsae\n",
			errors:      []string{"inherit_not_found"},
			suggestions: []string{"Base"},
		},
		{
			name:        "unknown member",
			yaml:        "types:\n  - type: Product\n    members:\n      - name: Sku\n",
			errors:      []string{"member_not_found"},
			suggestions: []string{"SKU"},
		},
		{
			name:   "unexported member",
			yaml:   "types:\n  - type: Product\n    members:\n      - name: note\n",
			errors: []string{"unexported_member"},
		},
		{
			name:   "map on slice",
			yaml:   "types:\n  - type: Product\n    members:\n      - name: Tags\n        shape: map\n        of: string\n",
			errors: []string{"shape_mismatch"},
		},
		{
			name:        "unknown of",
			yaml:        "types:\n  - type: Product\n    members:\n      - name: Price\n        of: Mony\n",
			errors:      []string{"of_not_found"},
			suggestions: []string{"Money"},
		},
		{
			name: "qualified name",
			yaml: "types:\n  - type: " + shopPkg + ".Money\n    members:\n      - name: Cents\n        of: number\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := schema.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			diags := Check(f, graph)
			assert.Equal(t, tt.errors, nilIfEmpty(codes(diags.Errors)), diags.Error())

			if tt.suggestions != nil {
				require.NotEmpty(t, diags.Errors)
				assert.Equal(t, tt.suggestions, diags.Errors[0].Suggestions)
			}
		})
	}
}

func TestCheck_Nil(t *testing.T) {
	assert.Equal(t, []string{"nothing_to_check"}, codes(Check(nil, NewTypeGraph()).Errors))
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}

	return s
}
