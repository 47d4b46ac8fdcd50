package postgres

type teamTableModel struct {
	ID      int64   `db:"id"`
	Name    string  `db:"name"`
	Acronym string  `db:"acronym"`
	Budget  float64 `db:"budget"`
}

type teamWriteModel struct {
	Name    string  `db:"name"`
	Acronym string  `db:"acronym"`
	Budget  float64 `db:"budget"`
}
