package suggestion

import (
	"encoding/json"
	"fmt"
	"strings"
)

// catalogSummary is the slimmed-down catalog sent to the collaborator:
// names and categories only, never prices or ids.
type catalogSummary struct {
	Name     string `json:"nome"`
	Category string `json:"categoria"`
}

const defaultTemperature = 20.0

// buildPrompt assembles the upsell prompt from the weather, the current
// cart, the customer's past item names and the catalog summary.
func buildPrompt(temperature *float64, cartItems, historyItems []string, catalog []catalogSummary) string {
	temp := defaultTemperature
	if temperature != nil {
		temp = *temperature
	}

	cartJSON, _ := json.Marshal(emptyIfNil(cartItems))
	historyJSON, _ := json.Marshal(emptyIfNil(historyItems))
	catalogJSON, _ := json.Marshal(catalog)

	var b strings.Builder
	b.WriteString("Você é um assistente de totem de autoatendimento de uma lanchonete.\n")
	b.WriteString("Seu objetivo é dar UMA sugestão curta (máx 25 palavras), amigável e criativa\n")
	b.WriteString("para incentivar o usuário a comprar mais um item.\n")
	b.WriteString("NÃO use emojis. NÃO seja robótico (\"Notei que...\"). Seja direto e vendedor.\n")
	b.WriteString("Baseie-se no contexto, especialmente no histórico e no clima.\n\n")
	b.WriteString("--- CONTEXTO ---\n")
	fmt.Fprintf(&b, "Clima: %g°C.\n", temp)
	fmt.Fprintf(&b, "Itens no Carrinho Atual: %s\n", cartJSON)
	fmt.Fprintf(&b, "Histórico de Pedidos Passados: %s\n", historyJSON)
	fmt.Fprintf(&b, "Cardápio Disponível: %s\n", catalogJSON)
	b.WriteString("---\n\n")
	b.WriteString("Gere a sugestão:")
	return b.String()
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
