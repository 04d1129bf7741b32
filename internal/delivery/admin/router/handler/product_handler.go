package handler

import (
	"io"
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	AdminUC  usecase.AdminUsecase
	Uploader service.ImageUploader
	Logger   *slog.Logger
}

// ProductHandler manages the catalog from the back-office.
type ProductHandler struct {
	adminUC  usecase.AdminUsecase
	uploader service.ImageUploader
	logger   *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		adminUC:  params.AdminUC,
		uploader: params.Uploader,
		logger:   params.Logger,
	}
}

// ListProducts handles the full catalog listing, unavailable products included
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.Products(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct handles creating a product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles overwriting a product's editable fields
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.adminUC.UpdateProduct(c.Request().Context(), c.Param("id"), input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// DeleteProduct handles removing a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.adminUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// UploadImage hosts a product image and returns its public URL
func (h *ProductHandler) UploadImage(c echo.Context) error {
	filename, mimeType, data, err := readImageFile(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.uploader.Upload(c.Request().Context(), filename, mimeType, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// readImageFile pulls one multipart file out of the request.
func readImageFile(c echo.Context, field string) (filename, mimeType string, data []byte, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", "", nil, domainerrors.ErrNotAnImage
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", "", nil, domainerrors.ErrNotAnImage
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return "", "", nil, domainerrors.ErrNotAnImage
	}

	return fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, nil
}
