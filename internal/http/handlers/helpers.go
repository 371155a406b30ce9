package handlers

import (
	"meridastore.com/app/internal/api"
	"meridastore.com/app/internal/shared/apperr"
	"meridastore.com/app/pkg/view"
)

const dateLayout = "Jan 2, 2006"

// publicOr picks the backend's own error message when it sent one,
// otherwise the per-operation fallback.
func publicOr(err error, fallback string) string {
	if ae, ok := apperr.As(err); ok && ae.PublicMsg != "" {
		return ae.PublicMsg
	}
	return fallback
}

func mapProductRows(items []api.Product) []view.AdminProductRow {
	out := make([]view.AdminProductRow, 0, len(items))
	for _, p := range items {
		out = append(out, view.AdminProductRow{
			ID:       p.ID,
			Name:     p.Name,
			Image:    view.ImageOr(p.Image, view.PlaceholderThumb),
			Price:    view.Money(p.Price),
			Stock:    p.Stock,
			Category: p.Category,
		})
	}
	return out
}

func mapOrderCards(items []api.Order) []view.OrderCard {
	out := make([]view.OrderCard, 0, len(items))
	for _, o := range items {
		card := view.OrderCard{
			ID:            o.ID,
			CustomerName:  "N/A",
			CustomerEmail: "N/A",
			Date:          o.CreatedAt.Format(dateLayout),
			Total:         view.Money(o.TotalPrice),
			IsPaid:        o.IsPaid,
			NextPaid:      !o.IsPaid,
			Address:       o.ShippingAddress,
		}
		if o.User != nil {
			if o.User.Name != "" {
				card.CustomerName = o.User.Name
			}
			if o.User.Email != "" {
				card.CustomerEmail = o.User.Email
			}
		}
		for _, it := range o.OrderItems {
			card.Items = append(card.Items, view.OrderLine{
				Name:      it.Name,
				Image:     view.ImageOr(it.Image, view.PlaceholderItemThumb),
				Qty:       it.Quantity,
				UnitPrice: view.Money(it.Price),
				LineTotal: view.LineTotal(it.Price, it.Quantity),
			})
		}
		out = append(out, card)
	}
	return out
}
