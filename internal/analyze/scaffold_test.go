package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weichx/cerialize/schema"
)

func TestScaffold(t *testing.T) {
	graph := loadShop(t)

	f := graph.Scaffold()
	require.Len(t, f.Types, 4)
	assert.Equal(t, schema.CurrentVersion, f.Version)

	base, ok := f.Lookup("Base")
	require.True(t, ok)
	assert.Equal(t, []schema.MemberDecl{
		{Name: "ID", Of: "number", Key: "id"},
		{Name: "CreatedAt", Of: "date", Key: "created_at"},
	}, base.Members)

	product, ok := f.Lookup("Product")
	require.True(t, ok)
	assert.Equal(t, "Base", product.Inherit)
	assert.Equal(t, []schema.MemberDecl{
		{Name: "SKU", Of: "string", Key: "sku"},
		{Name: "Price", Of: "Money"},
		{Name: "Tags", Shape: "array", Of: "string"},
		{Name: "Prices", Shape: "map", Of: "Money"},
		{Name: "Related", Shape: "array", Of: "Product"},
		{Name: "Pattern", Of: "regexp"},
		{Name: "Extra", Shape: "json"},
		{Name: "Status", Of: "string"},
		{Name: "Matrix"},
	}, product.Members)

	catalog, ok := f.Lookup("Catalog")
	require.True(t, ok)
	assert.Equal(t, []schema.MemberDecl{
		{Name: "Products", Shape: "array", Of: "Product", Key: "products"},
	}, catalog.Members)
}

func TestScaffold_PassesChecks(t *testing.T) {
	graph := loadShop(t)
	f := graph.Scaffold()

	data, err := schema.Marshal(f)
	require.NoError(t, err)

	reparsed, err := schema.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, reparsed)

	assert.True(t, schema.Validate(reparsed, nil).IsValid())
	assert.True(t, Check(reparsed, graph).IsValid(), Check(reparsed, graph).Error())
}
