package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"deskflow/internal/dashboard"
)

// listSchoolsQuery counts distinct order forms distributed to any unit of a
// school. An empty $1 array counts every form type.
const listSchoolsQuery = `
	SELECT
		e.id,
		e.nome,
		e.codigo,
		COUNT(DISTINCT f.id)
	FROM escolas e
	INNER JOIN unidades_escolares ue
		ON ue.escola_id = e.id
	INNER JOIN distribuicao_materiais dm
		ON dm.unidade_escolar_id = ue.id
	INNER JOIN formularios f
		ON f.id = dm.formulario_id
	WHERE cardinality($1::text[]) = 0
		OR UPPER(f.tipo_formulario) = ANY($1::text[])
	GROUP BY e.id, e.nome, e.codigo
	ORDER BY e.nome, e.id
`

// PostgresStore reads the schools listing from the production-planning schema.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListSchools returns schools with at least one distributed order form.
// formTypes must already be upper-cased.
func (s *PostgresStore) ListSchools(ctx context.Context, formTypes []string) ([]dashboard.School, error) {
	if formTypes == nil {
		formTypes = []string{}
	}
	rows, err := s.db.QueryContext(ctx, listSchoolsQuery, pq.Array(formTypes))
	if err != nil {
		return nil, fmt.Errorf("query schools: %w", err)
	}
	defer rows.Close()

	out := make([]dashboard.School, 0)
	for rows.Next() {
		var (
			school dashboard.School
			code   sql.NullString
		)
		if err := rows.Scan(&school.ID, &school.Name, &code, &school.TotalOrders); err != nil {
			return nil, fmt.Errorf("scan school: %w", err)
		}
		if code.Valid {
			school.Code = &code.String
		}
		out = append(out, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schools: %w", err)
	}
	return out, nil
}
