package shop

import (
	"regexp"
	"time"
)

type Status string

type Money struct {
	Cents    int64  `cerialize:"cents"`
	Currency string `json:"currency,omitempty"`
}

type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	*Base
	SKU     string `cerialize:"sku"`
	Price   Money
	Tags    []string
	Prices  map[string]Money
	Related []*Product
	Pattern *regexp.Regexp
	Extra   any
	Status  Status
	Matrix  [][]float64
	Hook    func()
	Secret  string `cerialize:"-"`
	note    string
}

type Catalog struct {
	Products []Product `json:"products"`
	Index    map[int]string
	Owner    struct{ Name string }
}

type hidden struct {
	A int
}
