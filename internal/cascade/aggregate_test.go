package cascade_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"deskflow/internal/cascade"
	"deskflow/internal/cascade/cascadetest"
	dErrors "deskflow/pkg/domain-errors"
	"deskflow/pkg/testutil"
)

type AggregateSuite struct {
	suite.Suite
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

func (s *AggregateSuite) TestTwoDatesOneProduct() {
	rows := []cascade.FlatRow{
		cascadetest.Row("A", "5", 1, "Caderno", "2024-01-05", "f2.pdf", 5, 8),
		cascadetest.Row("A", "5", 1, "Caderno", "2024-01-10", "f1.pdf", 10, 20),
	}

	got, err := cascade.Aggregate(rows)
	s.Require().NoError(err)

	body, err := json.Marshal(got)
	s.Require().NoError(err)
	s.JSONEq(`[{
		"divisao_logistica": "A",
		"dias_uteis": "5",
		"quantidade_total": 2,
		"produtos": [{
			"id_produto": 1,
			"produto": "Caderno",
			"quantidade": 2,
			"datas": [
				{"data_saida": "2024-01-10", "quantidade": 1, "arquivos": [{"arquivo": "f1.pdf", "copias": 10, "paginas": 20}]},
				{"data_saida": "2024-01-05", "quantidade": 1, "arquivos": [{"arquivo": "f2.pdf", "copias": 5, "paginas": 8}]}
			]
		}]
	}]`, string(body))
}

func (s *AggregateSuite) TestNullKeysGroupUnderSentinels() {
	got, err := cascade.Aggregate([]cascade.FlatRow{
		cascadetest.Row("", "", 3, "Agenda", "", "agenda.pdf", 2, 0),
	})
	s.Require().NoError(err)
	s.Require().Len(got, 1)

	div := got[0]
	s.Equal("Sem divisão", div.LogisticsDivision)
	s.Equal("Sem dias uteis", div.WorkingDays)
	s.Equal(1, div.Total)
	s.Require().Len(div.Products, 1)
	s.Require().Len(div.Products[0].Dates, 1)
	s.Equal("Sem data saida", div.Products[0].Dates[0].Date)

	body, err := json.Marshal(div.Products[0].Dates[0].Files[0])
	s.Require().NoError(err)
	s.JSONEq(`{"arquivo": "agenda.pdf", "copias": 2, "paginas": null}`, string(body))
}

func (s *AggregateSuite) TestEmptyInput() {
	got, err := cascade.Aggregate(nil)
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)

	body, err := json.Marshal(got)
	s.Require().NoError(err)
	s.Equal("[]", string(body))
}

func (s *AggregateSuite) TestInvalidRowAbortsWholeAggregation() {
	bad := cascadetest.Row("A", "5", 1, "Caderno", "2024-01-05", "f2.pdf", 5, 8)
	bad.ProductID = nil
	rows := []cascade.FlatRow{
		cascadetest.Row("A", "5", 1, "Caderno", "2024-01-10", "f1.pdf", 10, 20),
		bad,
	}

	got, err := cascade.Aggregate(rows)
	s.Nil(got)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	s.Contains(err.Error(), "row 1")
}

func (s *AggregateSuite) TestOrdering() {
	rows := []cascade.FlatRow{
		cascadetest.Row("Sul", "4", 2, "Zebra", "2024-02-01", "b.pdf", 1, 0),
		cascadetest.Row("Norte", "2", 9, "Caderno", "2024-01-01", "z.pdf", 1, 0),
		cascadetest.Row("Sul", "4", 3, "Ábaco", "2024-02-01", "a.pdf", 1, 0),
		cascadetest.Row("Sul", "4", 4, "Caderno", "", "c.pdf", 1, 0),
		cascadetest.Row("Sul", "4", 4, "Caderno", "2024-03-15", "d.pdf", 1, 0),
		cascadetest.Row("Sul", "4", 4, "Caderno", "2023-12-31", "e.pdf", 1, 0),
		cascadetest.Row("Sul", "4", 4, "Caderno", "2024-03-15", "B.pdf", 1, 0),
		cascadetest.Row("Centro", "1", 5, "Mapa", "2024-01-01", "m.pdf", 1, 0),
	}

	got, err := cascade.Aggregate(rows)
	s.Require().NoError(err)

	testutil.Given(s.T(), "divisions", func(t *testing.T) {
		testutil.Then(t, "they are sorted ascending by name", func(t *testing.T) {
			assert.Equal(t, []string{"Centro", "Norte", "Sul"}, divisionNames(got))
		})
	})

	sul := got[2]
	testutil.Given(s.T(), "products within a division", func(t *testing.T) {
		testutil.Then(t, "accented names sort with their base letter", func(t *testing.T) {
			assert.Equal(t, []string{"Ábaco", "Caderno", "Zebra"}, productNames(sul))
		})
	})

	caderno := sul.Products[1]
	testutil.Given(s.T(), "dates within a product", func(t *testing.T) {
		testutil.Then(t, "they are newest first with the missing date last", func(t *testing.T) {
			assert.Equal(t, []string{"2024-03-15", "2023-12-31", "Sem data saida"}, dateStrings(caderno))
		})
	})

	testutil.Given(s.T(), "files within a date", func(t *testing.T) {
		testutil.Then(t, "they are sorted ascending by name", func(t *testing.T) {
			files := caderno.Dates[0].Files
			require.Len(t, files, 2)
			assert.Equal(t, "B.pdf", files[0].Name)
			assert.Equal(t, "d.pdf", files[1].Name)
		})
	})
}

func (s *AggregateSuite) TestTiesKeepFirstAppearance() {
	rows := []cascade.FlatRow{
		cascadetest.Row("A", "10", 1, "Caderno", "2024-01-01", "x.pdf", 1, 0),
		cascadetest.Row("A", "5", 1, "Caderno", "2024-01-01", "y.pdf", 1, 0),
		cascadetest.Row("A", "10", 2, "Caderno", "2024-01-01", "z.pdf", 1, 0),
		cascadetest.Row("A", "10", 1, "Caderno", "2024-01-01", "same.pdf", 4, 0),
		cascadetest.Row("A", "10", 1, "Caderno", "2024-01-01", "same.pdf", 6, 0),
	}

	got, err := cascade.Aggregate(rows)
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	s.Equal("10", got[0].WorkingDays)
	s.Equal("5", got[1].WorkingDays)

	products := got[0].Products
	s.Require().Len(products, 2)
	s.Equal(int64(1), products[0].ID)
	s.Equal(int64(2), products[1].ID)

	files := products[0].Dates[0].Files
	s.Require().Len(files, 3)
	s.Equal([]int{4, 6, 1}, []int{files[0].Copies, files[1].Copies, files[2].Copies})
	s.Equal(3, products[0].Dates[0].Quantity)
}

func (s *AggregateSuite) TestCountConservation() {
	rows := randomRows(rand.New(rand.NewSource(42)), 500)

	got, err := cascade.Aggregate(rows)
	s.Require().NoError(err)
	s.Equal(len(rows), cascade.TotalFiles(got))

	for _, div := range got {
		productSum := 0
		for _, p := range div.Products {
			dateSum := 0
			for _, d := range p.Dates {
				s.Equal(len(d.Files), d.Quantity)
				s.NotEmpty(d.Files)
				dateSum += d.Quantity
			}
			s.Equal(p.Quantity, dateSum)
			productSum += p.Quantity
		}
		s.Equal(div.Total, productSum)
	}
}

func (s *AggregateSuite) TestIdempotentAndInputUntouched() {
	rows := randomRows(rand.New(rand.NewSource(7)), 200)
	snapshot := slices.Clone(rows)

	first, err := cascade.Aggregate(rows)
	s.Require().NoError(err)
	second, err := cascade.Aggregate(rows)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(snapshot, rows)
}

func (s *AggregateSuite) TestUnicodeRoundTrip() {
	got, err := cascade.Aggregate([]cascade.FlatRow{
		cascadetest.Row("São João", "7", 1, "Língua Portuguesa – 3º ano", "2024-06-01", "ação.pdf", 1, 12),
	})
	s.Require().NoError(err)

	body, err := json.Marshal(got)
	s.Require().NoError(err)

	var decoded []cascade.Division
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal(got, decoded)
	s.Contains(string(body), "São João")
}

func randomRows(r *rand.Rand, n int) []cascade.FlatRow {
	divisions := []string{"", "Norte", "Sul", "Leste"}
	days := []string{"", "3", "5"}
	products := []string{"Caderno", "Apostila", "Agenda"}
	dates := []string{"", "2024-01-01", "2024-02-10", "2023-11-30"}

	rows := make([]cascade.FlatRow, 0, n)
	for i := 0; i < n; i++ {
		p := r.Intn(len(products))
		rows = append(rows, cascadetest.Row(
			divisions[r.Intn(len(divisions))],
			days[r.Intn(len(days))],
			int64(p+1),
			products[p],
			dates[r.Intn(len(dates))],
			fmt.Sprintf("file-%03d.pdf", r.Intn(50)),
			r.Intn(30),
			r.Intn(100),
		))
	}
	return rows
}

func divisionNames(divs []cascade.Division) []string {
	out := make([]string, 0, len(divs))
	for _, d := range divs {
		out = append(out, d.LogisticsDivision)
	}
	return out
}

func productNames(div cascade.Division) []string {
	out := make([]string, 0, len(div.Products))
	for _, p := range div.Products {
		out = append(out, p.Name)
	}
	return out
}

func dateStrings(p cascade.Product) []string {
	out := make([]string, 0, len(p.Dates))
	for _, d := range p.Dates {
		out = append(out, d.Date)
	}
	return out
}
