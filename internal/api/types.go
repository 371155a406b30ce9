package api

import "time"

// Wire types mirror the backend's JSON exactly (Mongo-style "_id" keys).

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// ProductInput is the create/update request body.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

type OrderUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Order struct {
	ID              string      `json:"_id"`
	User            *OrderUser  `json:"user,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	OrderItems      []OrderItem `json:"orderItems"`
	ShippingAddress string      `json:"shippingAddress"`
	TotalPrice      float64     `json:"totalPrice"`
	IsPaid          bool        `json:"isPaid"`
}

// OrderItem is a denormalized snapshot of a product at order time;
// later product edits do not touch it.
type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

type OrderInput struct {
	OrderItems      []OrderItem `json:"orderItems"`
	ShippingAddress string      `json:"shippingAddress"`
	TotalPrice      float64     `json:"totalPrice"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
