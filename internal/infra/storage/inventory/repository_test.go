package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuratyres/ATS-ShopService/internal/domain"
)

func TestInsertItemQuerySingleStatement(t *testing.T) {
	item := &domain.InventoryItem{
		Name:        "205/55R16 Radial",
		Category:    "Tyres",
		Stock:       4,
		MinStock:    10,
		Price:       18500,
		Supplier:    "Ceylon Tyre Imports",
		Description: "All-season radial",
	}

	query, args, err := insertItemQuery(item)
	require.NoError(t, err)

	// The reference is derived from the same sequence draw as the id, inside
	// the insert itself. A follow-up UPDATE would leave a window where the
	// row exists with an empty reference and concurrent creates collide on
	// the unique constraint.
	assert.True(t, strings.HasPrefix(query, "INSERT INTO inventory_items"))
	assert.Contains(t, query, "nextval(pg_get_serial_sequence('inventory_items', 'id'))")
	assert.Contains(t, query, "'"+domain.InventoryRefPrefix+"' || lpad")
	assert.Contains(t, query, "RETURNING id, reference, created_at, updated_at")
	assert.NotContains(t, query, "UPDATE")
	assert.NotContains(t, args, "")

	require.Len(t, args, 7)
	assert.Equal(t, "205/55R16 Radial", args[0])
	assert.Equal(t, "Tyres", args[1])
	assert.Equal(t, 18500.0, args[4])
}
