package domain

// UnitRow é uma linha da listagem de unidades de uma categoria.
// O extrator só usa o ID; o ponteiro distingue campo ausente de zero.
type UnitRow struct {
	ID *int64 `json:"ID"`
}
