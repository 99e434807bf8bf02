package cascade

import "time"

// Placeholders substituted for missing grouping keys so the rows still
// participate in grouping and ordering.
const (
	NoDivision      = "Sem divisão"
	NoWorkingDays   = "Sem dias uteis"
	NoDepartureDate = "Sem data saida"
)

// DateLayout is the canonical textual form of a departure date.
const DateLayout = "2006-01-02"

// FlatRow is one physical file distribution for a school, produced by the
// inner join of order form, item specification, file, distribution, school
// unit and product catalog entry.
type FlatRow struct {
	LogisticsDivision *string
	WorkingDays       *int
	ProductID         *int64
	ProductName       string
	// DepartureDate is a calendar date; its location is never converted.
	DepartureDate *time.Time
	FileID        int64
	FileName      string
	Copies        int
	Pages         *int
}

// NormalizedRow is a FlatRow with every grouping key resolved to text.
type NormalizedRow struct {
	LogisticsDivision string
	WorkingDays       string
	ProductID         int64
	ProductName       string
	DepartureDate     string
	FileID            int64
	FileName          string
	Copies            int
	Pages             *int
}

// Division is the top level of the cascade report.
type Division struct {
	LogisticsDivision string    `json:"divisao_logistica"`
	WorkingDays       string    `json:"dias_uteis"`
	Total             int       `json:"quantidade_total"`
	Products          []Product `json:"produtos"`
}

type Product struct {
	ID       int64           `json:"id_produto"`
	Name     string          `json:"produto"`
	Quantity int             `json:"quantidade"`
	Dates    []DepartureDate `json:"datas"`
}

type DepartureDate struct {
	Date     string `json:"data_saida"`
	Quantity int    `json:"quantidade"`
	Files    []File `json:"arquivos"`
}

type File struct {
	Name   string `json:"arquivo"`
	Copies int    `json:"copias"`
	Pages  *int   `json:"paginas"`
}
