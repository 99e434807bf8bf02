package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskflow/internal/dashboard"
)

func code(s string) *string { return &s }

func TestInMemoryListSchools(t *testing.T) {
	st := NewInMemory()
	st.AddSchool(dashboard.School{ID: 2, Name: "Colégio Beta", Code: code("B")})
	st.AddSchool(dashboard.School{ID: 1, Name: "Alfa", TotalOrders: 99})
	st.AddSchool(dashboard.School{ID: 3, Name: "Sem Pedidos"})
	st.Distribute(1, 10, "memorex")
	st.Distribute(1, 10, "MEMOREX")
	st.Distribute(1, 11, "AGENDA")
	st.Distribute(2, 12, "MEMOREX")
	st.Distribute(99, 13, "MEMOREX")

	t.Run("counts distinct forms per school ordered by name", func(t *testing.T) {
		got, err := st.ListSchools(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, 2, got[0].TotalOrders)
		assert.Equal(t, int64(2), got[1].ID)
		assert.Equal(t, 1, got[1].TotalOrders)
		assert.Equal(t, "B", *got[1].Code)
	})

	t.Run("filters by form type", func(t *testing.T) {
		got, err := st.ListSchools(context.Background(), []string{"AGENDA"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, 1, got[0].TotalOrders)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got, err := st.ListSchools(context.Background(), []string{"CALENDARIO"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
