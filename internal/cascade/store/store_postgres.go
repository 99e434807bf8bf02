package store

import (
	"context"
	"database/sql"
	"fmt"

	"deskflow/internal/cascade"
)

// listRowsQuery joins order form, item specification, file, distribution,
// school unit and product catalog. Inner joins drop files without a
// distribution or product; the product link is the shared id_produto, which
// carries no declared foreign key in the schema.
const listRowsQuery = `
	SELECT
		uc.divisao_logistica,
		uc.dias_uteis,
		b.id_produto,
		b.descricao,
		CAST(distri.data_saida AS DATE),
		ar.id,
		ar.nome,
		distri.quantidade,
		ar.paginas
	FROM formularios f
	INNER JOIN especificacoes_form e
		ON f.id = e.formulario_id
	INNER JOIN arquivo_pdfs ar
		ON ar.item_pedido_id = e.id
	INNER JOIN distribuicao_materiais distri
		ON distri.arquivo_pdf_id = ar.id
	INNER JOIN unidades_escolares uc
		ON distri.unidade_escolar_id = uc.id
	INNER JOIN bremen_itens b
		ON e.id_produto = b.id_produto
	WHERE UPPER(f.tipo_formulario) = UPPER($1)
		AND uc.escola_id = $2
	ORDER BY distri.id
`

// PostgresStore loads cascade rows from the production-planning schema.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed row source.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// ListRows returns one FlatRow per file distribution of schoolID whose order
// form type matches formType case-insensitively.
func (s *PostgresStore) ListRows(ctx context.Context, schoolID int64, formType string) ([]cascade.FlatRow, error) {
	rows, err := s.db.QueryContext(ctx, listRowsQuery, formType, schoolID)
	if err != nil {
		return nil, fmt.Errorf("query cascade rows: %w", err)
	}
	defer rows.Close()

	out := make([]cascade.FlatRow, 0)
	for rows.Next() {
		var r flatRow
		if err := rows.Scan(
			&r.Division,
			&r.WorkingDays,
			&r.ProductID,
			&r.ProductName,
			&r.DepartureDate,
			&r.FileID,
			&r.FileName,
			&r.Copies,
			&r.Pages,
		); err != nil {
			return nil, fmt.Errorf("scan cascade row: %w", err)
		}
		out = append(out, r.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cascade rows: %w", err)
	}
	return out, nil
}

type flatRow struct {
	Division      sql.NullString
	WorkingDays   sql.NullInt64
	ProductID     sql.NullInt64
	ProductName   sql.NullString
	DepartureDate sql.NullTime
	FileID        int64
	FileName      sql.NullString
	Copies        sql.NullInt64
	Pages         sql.NullInt64
}

func (r flatRow) toModel() cascade.FlatRow {
	row := cascade.FlatRow{
		ProductName: r.ProductName.String,
		FileID:      r.FileID,
		FileName:    r.FileName.String,
		Copies:      int(r.Copies.Int64),
	}
	if r.Division.Valid {
		division := r.Division.String
		row.LogisticsDivision = &division
	}
	if r.WorkingDays.Valid {
		days := int(r.WorkingDays.Int64)
		row.WorkingDays = &days
	}
	if r.ProductID.Valid {
		id := r.ProductID.Int64
		row.ProductID = &id
	}
	if r.DepartureDate.Valid {
		date := r.DepartureDate.Time
		row.DepartureDate = &date
	}
	if r.Pages.Valid {
		pages := int(r.Pages.Int64)
		row.Pages = &pages
	}
	return row
}
