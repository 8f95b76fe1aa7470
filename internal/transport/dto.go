package transport

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UpdateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductRef struct {
	ID uint `json:"id"`
}

type CreateCartItemRequest struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}
