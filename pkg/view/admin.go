package view

// Placeholder thumbnails, same as the storefront has always used.
const (
	PlaceholderThumb     = "https://via.placeholder.com/50"
	PlaceholderItemThumb = "https://via.placeholder.com/60"
)

// ImageOr returns url, or the placeholder when the product has no image.
func ImageOr(url, placeholder string) string {
	if url == "" {
		return placeholder
	}
	return url
}

// FormMode says whether the product form creates a new product or edits
// an existing one. The zero value is create mode; edit mode is bound to
// exactly one product id. There is no third state.
type FormMode struct {
	productID string
}

func CreateMode() FormMode { return FormMode{} }

func EditMode(productID string) FormMode { return FormMode{productID: productID} }

func (m FormMode) Editing() bool { return m.productID != "" }

func (m FormMode) ProductID() string { return m.productID }

// ProductForm mirrors the form fields as text, exactly as submitted, so
// a failed save can re-render what the user typed.
type ProductForm struct {
	Name        string
	Price       string
	Description string
	Image       string
	Category    string
	Stock       string
}

func (f ProductForm) Empty() bool {
	return f == ProductForm{}
}

type AdminProductRow struct {
	ID       string
	Name     string
	Image    string // never empty; placeholder applied at mapping time
	Price    string
	Stock    int
	Category string
}

type OrderLine struct {
	Name      string
	Image     string
	Qty       int
	UnitPrice string
	LineTotal string
}

type OrderCard struct {
	ID            string
	CustomerName  string // "N/A" when the user reference is absent
	CustomerEmail string
	Date          string
	Total         string
	IsPaid        bool
	NextPaid      bool // negation of IsPaid, posted by the toggle form
	Address       string
	Items         []OrderLine
}

type AdminPage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int
	Tab       string // "products" | "orders"

	Mode     FormMode
	Form     ProductForm
	Products []AdminProductRow

	Orders []OrderCard
}

type ConfirmDeletePage struct {
	Title     string
	Flash     *Flash
	Error     string
	CartCount int
	Product   AdminProductRow
}
