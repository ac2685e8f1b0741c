package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Godson70118993/Backend-produit/config"
	"github.com/Godson70118993/Backend-produit/internal/domain"
	"github.com/Godson70118993/Backend-produit/internal/repository"
	"github.com/Godson70118993/Backend-produit/internal/service"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

type Handler struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *gorm.DB
	productRepo *repository.ProductRepository
}

func NewHandler(cfg *config.Config, zapLogger *zap.Logger, db *gorm.DB) *Handler {
	return &Handler{
		cfg:         cfg,
		logger:      zapLogger,
		db:          db,
		productRepo: repository.NewProductRepository(),
	}
}

// Routes builds the HTTP routing table. Update and delete live under
// /api/products while the other product routes do not; the split matches the
// published API surface.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /health", h.handleHealth)

	// Product API endpoints
	mux.HandleFunc("POST /products/{$}", h.handleCreateProduct)
	mux.HandleFunc("GET /products/{$}", h.handleListProducts)
	mux.HandleFunc("GET /products/{id}", h.handleGetProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.handleUpdateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.handleDeleteProduct)

	return h.requestLogger(h.corsMiddleware(mux))
}

// session derives the request-scoped database session. gorm returns the
// underlying connection to the pool when each statement finishes, on every
// exit path.
func (h *Handler) session(r *http.Request) *gorm.DB {
	return h.db.WithContext(r.Context())
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Bienvenue dans l'application de gestion des produits!",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "backend-produit",
	})
}

// Create a new product
func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeProductBody(w, r)
	if !ok {
		return
	}

	product, err := h.productRepo.Create(h.session(r), input)
	if err != nil {
		h.logger.Error("Error creating product", zap.Error(err))
		h.errorJSON(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// List products with skip/limit paging
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", defaultSkip)
	limit := queryInt(r, "limit", defaultLimit)

	products, err := h.productRepo.List(h.session(r), skip, limit)
	if err != nil {
		h.logger.Error("Error listing products", zap.Error(err))
		h.errorJSON(w, http.StatusInternalServerError, "Error listing products")
		return
	}

	h.writeJSON(w, http.StatusOK, products)
}

// Get single product by ID
func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	product, err := h.productRepo.GetByID(h.session(r), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Error getting product", zap.Error(err), zap.Uint("id", id))
		h.errorJSON(w, http.StatusInternalServerError, "Error getting product")
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// Update product
func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	input, ok := h.decodeProductBody(w, r)
	if !ok {
		return
	}

	product, err := h.productRepo.Update(h.session(r), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			h.errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("Error updating product", zap.Error(err), zap.Uint("id", id))
		h.errorJSON(w, http.StatusInternalServerError, "Error updating product")
		return
	}

	h.writeJSON(w, http.StatusOK, product)
}

// Delete product
func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	deleted, err := h.productRepo.Delete(h.session(r), id)
	if err != nil {
		h.logger.Error("Error deleting product", zap.Error(err), zap.Uint("id", id))
		h.errorJSON(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if !deleted {
		h.errorJSON(w, http.StatusNotFound, "Product not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// decodeProductBody parses and validates a product body. On failure it writes
// a 422 response and returns ok=false.
func (h *Handler) decodeProductBody(w http.ResponseWriter, r *http.Request) (domain.ProductInput, bool) {
	var input domain.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, "Invalid request body")
		return input, false
	}
	if err := service.ValidateProduct(input); err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return input, false
	}
	return input, true
}

// pathID parses the {id} path segment. A non-integer id is malformed client
// input, not a missing product.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		h.errorJSON(w, http.StatusUnprocessableEntity, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Error encoding response", zap.Error(err))
	}
}

func (h *Handler) errorJSON(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}

// corsMiddleware sets CORS headers for configured origins and short-circuits
// preflight requests.
func (h *Handler) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && h.cfg.OriginAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestLogger tags every request with an id and logs method, path, status
// and duration.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		h.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
