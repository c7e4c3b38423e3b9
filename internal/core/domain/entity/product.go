package entity

// Product is a catalog item. JSON field names match the on-disk documents
// consumed by the totem frontend (cardapio.json).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Category    string  `json:"categoria"`
	Image       string  `json:"imagem"`
}
