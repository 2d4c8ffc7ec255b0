package models

// Order accumulates the pizza designs submitted during one session.
// It is never written to the database.
type Order struct {
	Designs []Pizza `json:"designs"`
}

// NewOrder returns an empty order
func NewOrder() *Order {
	return &Order{Designs: []Pizza{}}
}

// AddDesign appends a completed design to the order
func (o *Order) AddDesign(design Pizza) {
	o.Designs = append(o.Designs, design)
}
