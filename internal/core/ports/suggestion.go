package ports

import "context"

// Generator is the contract with the external text-generation collaborator.
// It receives a fully assembled prompt and returns one short free-text
// suggestion. The core treats it as an opaque best-effort call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SuggestRequest is the minimal context the frontend sends; history and
// catalog are resolved server-side.
type SuggestRequest struct {
	CustomerID  string
	CartItems   []string
	Temperature *float64
}

type Suggester interface {
	Suggest(ctx context.Context, req SuggestRequest) (string, error)
}
