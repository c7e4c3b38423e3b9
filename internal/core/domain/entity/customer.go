package entity

// Customer is a registered kiosk user. CPF is the unique business key;
// History is append-only and survives order finalization.
type Customer struct {
	ID      string  `json:"id"`
	CPF     string  `json:"cpf"`
	Name    string  `json:"nome"`
	Phone   string  `json:"celular"`
	Email   *string `json:"email"`
	History []Order `json:"historico"`
}
