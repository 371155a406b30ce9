package view

type CartRow struct {
	ProductID string
	Name      string
	Image     string
	UnitPrice string
	Qty       int
	LineTotal string
}

type CartPage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int

	Items   []CartRow
	Total   string
	Address string // preserved on validation failure
}
