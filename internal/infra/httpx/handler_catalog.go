package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jpmattos/kiosk-totem/internal/core/ports"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// ListProducts returns the catalog verbatim.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// AddProduct receives a multipart form (nome, descricao, preco, categoria,
// imagem), stores the image under the uploads dir and persists the product.
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid multipart form")
		return
	}

	name := r.FormValue("nome")
	description := r.FormValue("descricao")
	rawPrice := r.FormValue("preco")
	category := r.FormValue("categoria")

	file, header, err := r.FormFile("imagem")
	if err != nil || name == "" || description == "" || rawPrice == "" || category == "" {
		writeError(w, http.StatusBadRequest, "validation_error",
			"nome, descricao, preco, categoria and imagem are all required")
		return
	}
	defer file.Close()

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "preco must be a number")
		return
	}

	imagePath, err := h.saveUpload(file, header.Filename)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	product, err := h.catalog.Add(r.Context(), ports.AddProductInput{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       imagePath,
	})
	if err != nil {
		// The orphaned image file is left behind on purpose: uploads are
		// content-addressed by timestamp and harmless to sweep offline.
		writeDomainError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "product added", "product_id", product.ID, "categoria", product.Category)
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct changes name and description only.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	product, err := h.catalog.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// saveUpload writes the image under the uploads dir with a timestamp-based
// name (original extension kept) and returns the relative path stored on
// the product record.
func (h *Handler) saveUpload(file io.Reader, originalName string) (string, error) {
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(h.uploadsDir, filename))
	if err != nil {
		return "", fmt.Errorf("httpx: create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("httpx: store upload: %w", err)
	}
	return filepath.ToSlash(filepath.Join("uploads", filename)), nil
}
