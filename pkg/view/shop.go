package view

type ProductCard struct {
	ID          string
	Name        string
	Image       string
	Price       string
	Description string
	Category    string
	Stock       int
}

type ShopPage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int
	Products  []ProductCard
}

type OrdersPage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int
	Orders    []OrderCard
}

type LoginPage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int
	Email     string
	ReturnTo  string
}

type ErrorPage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int
	Status    int
	Message   string
	RequestID string
}
