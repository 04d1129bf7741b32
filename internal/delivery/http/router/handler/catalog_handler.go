package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	PosterUC  usecase.PosterUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the storefront's read-only product view.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	posterUC  usecase.PosterUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		posterUC:  params.PosterUC,
		logger:    params.Logger,
	}
}

// productView is the storefront JSON shape of a product.
type productView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameEn        string   `json:"nameEn,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Available     bool     `json:"available"`
	Featured      bool     `json:"featured"`
	Bestseller    bool     `json:"bestseller"`
	Discount      *int     `json:"discount,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Reviews       *int     `json:"reviews,omitempty"`
}

func toProductView(p *entity.Product) productView {
	return productView{
		ID:            p.ID,
		Name:          p.Name,
		NameEn:        p.NameEn,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      string(p.Category),
		Description:   p.Description,
		Image:         p.Image,
		Available:     p.Available,
		Featured:      p.Featured,
		Bestseller:    p.Bestseller,
		Discount:      p.Discount,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
	}
}

// ListProducts handles the storefront catalog browse
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query := usecase.BrowseQuery{
		Category: entity.Category(c.QueryParam("category")),
		Search:   c.QueryParam("search"),
		Sort:     usecase.SortKey(c.QueryParam("sort")),
		Language: entity.Language(c.QueryParam("lang")),
	}

	products, err := h.catalogUC.Browse(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetProduct handles a single product lookup
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.Product(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// ListCategories handles the category filter listing
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	lang := entity.Language(c.QueryParam("lang"))
	if lang != entity.LanguageEnglish {
		lang = entity.LanguageArabic
	}

	return response.Success(c, http.StatusOK, h.catalogUC.Categories(lang))
}

// GetPoster returns the visible marketing poster, if any
func (h *CatalogHandler) GetPoster(c echo.Context) error {
	poster, err := h.posterUC.Visible(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, poster)
}
