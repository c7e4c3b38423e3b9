// Package suggestion implements the upsell flow: it gathers the customer's
// history and the catalog server-side, builds the prompt, and consults the
// external text-generation collaborator. The whole thing is best-effort —
// a collaborator failure never blocks order placement.
package suggestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jpmattos/kiosk-totem/internal/core/domain/entity"
	"github.com/jpmattos/kiosk-totem/internal/core/ports"
	"github.com/jpmattos/kiosk-totem/internal/pkg/cache"
)

var _ ports.Suggester = (*Service)(nil)

// Service implements ports.Suggester on top of a Generator, with an
// optional TTL cache in front of the collaborator call.
type Service struct {
	catalog   ports.CatalogRepository
	customers ports.CustomerRepository
	generator ports.Generator
	cache     cache.Cache // nil-safe: caching skipped if nil
	ttl       time.Duration
}

func NewService(catalog ports.CatalogRepository, customers ports.CustomerRepository, generator ports.Generator, c cache.Cache, ttl time.Duration) *Service {
	return &Service{
		catalog:   catalog,
		customers: customers,
		generator: generator,
		cache:     c,
		ttl:       ttl,
	}
}

func (s *Service) Suggest(ctx context.Context, req ports.SuggestRequest) (string, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return "", err
	}
	catalog := make([]catalogSummary, len(products))
	for i, p := range products {
		catalog[i] = catalogSummary{Name: p.Name, Category: p.Category}
	}

	// An unknown or anonymous customer simply gets an empty history.
	var historyItems []string
	if req.CustomerID != "" {
		customer, err := s.customers.FindByID(ctx, req.CustomerID)
		if err != nil {
			return "", err
		}
		if customer != nil {
			for _, order := range customer.History {
				for _, item := range order.Items {
					historyItems = append(historyItems, item.Name)
				}
			}
		}
	}

	key := s.cacheKey(req)
	if key != "" {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			slog.WarnContext(ctx, "suggestion cache read failed", "error", err)
		} else if cached != "" {
			return cached, nil
		}
	}

	prompt := buildPrompt(req.Temperature, req.CartItems, historyItems, catalog)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrSuggestionUnavailable, err)
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			slog.WarnContext(ctx, "suggestion cache write failed", "error", err)
		}
	}
	return text, nil
}

// cacheKey hashes the request context so identical carts from the same
// customer under the same weather reuse the collaborator's answer. Empty
// string disables caching for this call.
func (s *Service) cacheKey(req ports.SuggestRequest) string {
	if s.cache == nil {
		return ""
	}
	temp := "-"
	if req.Temperature != nil {
		temp = fmt.Sprintf("%g", *req.Temperature)
	}
	sum := sha256.Sum256([]byte(req.CustomerID + "|" + temp + "|" + strings.Join(req.CartItems, "|")))
	return s.cache.GenerateKey("sugestao", hex.EncodeToString(sum[:8]))
}
