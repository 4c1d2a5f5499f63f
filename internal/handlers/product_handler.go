package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
	"github.com/jamar2101/Back-End-Artalis/internal/cache"
	"github.com/jamar2101/Back-End-Artalis/internal/catalog"
	"github.com/jamar2101/Back-End-Artalis/internal/models"
	"github.com/jamar2101/Back-End-Artalis/internal/upload"
)

// ProductStore is the slice of the repository the product handlers use.
type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, window catalog.Window) ([]models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Replace(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

type ProductHandler struct {
	store ProductStore
	saver *upload.Saver
	cache *cache.Cache
}

func NewProductHandler(store ProductStore, saver *upload.Saver, cache *cache.Cache) *ProductHandler {
	return &ProductHandler{store: store, saver: saver, cache: cache}
}

// GetProducts lists the catalog with filtering, sorting and pagination.
// Count and find are two store round-trips with no transaction between them,
// so total/pages can lag the page contents under concurrent writes.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	params := catalog.ParseListParams(c.Request.URL.Query())
	filter := params.BuildFilter()

	total, err := h.store.Count(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	products, err := h.store.Find(ctx, filter, catalog.ResolveSort(params.Sort), params.Window())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListEnvelope{
		Success: true,
		Data:    products,
		Page:    params.Page,
		Pages:   catalog.Pages(total, params.Limit),
		Total:   total,
		Message: fmt.Sprintf("%d parfum ditemukan", total),
	})
}

// GetProductByID fetches one product, serving repeat reads from cache.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	cacheKey := "product:" + id

	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := ItemEnvelope{
		Success: true,
		Data:    product,
		Message: "Parfum ditemukan",
	}
	h.cache.Set(cacheKey, envelope)
	c.JSON(http.StatusOK, envelope)
}

// CreateProduct adds a catalog item. name, description, price and category
// are required; the image comes from an explicit imagePath field, an
// uploaded file, or the placeholder, in that order.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	form, err := bindProductForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	// The upload is stored before validation runs; a create that fails below
	// leaves the file behind, as the storefront always has.
	uploadedPath, err := h.saveUploadedImage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if form.get("name") == "" || form.get("description") == "" ||
		form.get("price") == "" || form.get("category") == "" {
		respondError(c, apperr.Validation("Nama, deskripsi, harga, dan kategori parfum wajib diisi"))
		return
	}

	price, err := strconv.ParseFloat(form.get("price"), 64)
	if err != nil {
		respondError(c, apperr.Validation("Harga parfum tidak valid"))
		return
	}

	inStock, err := strconv.Atoi(form.get("inStock"))
	if err != nil {
		inStock = 0
	}

	notes, err := form.parseNotes()
	if err != nil {
		respondError(c, err)
		return
	}

	image := models.DefaultImage
	if uploadedPath != "" {
		image = uploadedPath
	}
	if p := form.get("imagePath"); p != "" {
		image = p
	}

	size := form.get("size")
	if size == "" {
		size = models.DefaultSize
	}
	concentration := form.get("concentration")
	if concentration == "" {
		concentration = models.DefaultConcentration
	}

	product := &models.Product{
		Name:          form.get("name"),
		Description:   form.get("description"),
		Price:         price,
		Category:      form.get("category"),
		InStock:       inStock,
		IsFeatured:    form.get("isFeatured") == "true",
		Image:         image,
		Brand:         form.get("brand"),
		Size:          size,
		Concentration: concentration,
		Notes:         notes,
	}

	if err := h.store.Insert(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	h.cache.DeleteByPrefix("products:")

	c.JSON(http.StatusCreated, ItemEnvelope{
		Success: true,
		Data:    product,
		Message: "Parfum berhasil ditambahkan",
	})
}

// UpdateProduct applies a partial update: supplied non-empty values
// overwrite, everything else is kept. isFeatured is the one exception — it is
// recomputed from the submitted value on every update, absent meaning false,
// because the admin form always posts the full field set.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	form, err := bindProductForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	uploadedPath, err := h.saveUploadedImage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if v := form.get("name"); v != "" {
		product.Name = v
	}
	if v := form.get("description"); v != "" {
		product.Description = v
	}
	if v := form.get("category"); v != "" {
		product.Category = v
	}
	if v := form.get("brand"); v != "" {
		product.Brand = v
	}
	if v := form.get("size"); v != "" {
		product.Size = v
	}
	if v := form.get("concentration"); v != "" {
		product.Concentration = v
	}

	if v := form.get("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(c, apperr.Validation("Harga parfum tidak valid"))
			return
		}
		product.Price = price
	}
	if v := form.get("inStock"); v != "" {
		if inStock, err := strconv.Atoi(v); err == nil {
			product.InStock = inStock
		}
	}

	product.IsFeatured = form.get("isFeatured") == "true"

	if form.get("notes") != "" {
		notes, err := form.parseNotes()
		if err != nil {
			respondError(c, err)
			return
		}
		product.Notes = notes
	}

	if p := form.get("imagePath"); p != "" {
		product.Image = p
	} else if uploadedPath != "" {
		product.Image = uploadedPath
	}

	if err := h.store.Replace(c.Request.Context(), product); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete("product:" + product.ID.Hex())
	h.cache.DeleteByPrefix("products:")

	c.JSON(http.StatusOK, ItemEnvelope{
		Success: true,
		Data:    product,
		Message: "Parfum berhasil diperbarui",
	})
}

// DeleteProduct removes a product permanently.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Delete("product:" + id)
	h.cache.DeleteByPrefix("products:")

	c.JSON(http.StatusOK, MessageEnvelope{
		Success: true,
		Message: "Parfum berhasil dihapus",
	})
}

// GetCategories returns the distinct category facet, in store order.
func (h *ProductHandler) GetCategories(c *gin.Context) {
	cacheKey := "products:categories"
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := CategoriesEnvelope{
		Success: true,
		Data:    categories,
		Message: "Kategori parfum berhasil diambil",
	}
	h.cache.Set(cacheKey, envelope)
	c.JSON(http.StatusOK, envelope)
}

// GetFeatured lists featured products, newest first. Total here is the
// number of items returned, not a collection count.
func (h *ProductHandler) GetFeatured(c *gin.Context) {
	limit := catalog.FeaturedLimit(c.Request.URL.Query())

	cacheKey := fmt.Sprintf("products:featured:%d", limit)
	if cached, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := h.store.Find(
		c.Request.Context(),
		bson.M{"isFeatured": true},
		catalog.ResolveSort("newest"),
		catalog.Window{Skip: 0, Limit: int64(limit)},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := FeaturedEnvelope{
		Success: true,
		Data:    products,
		Total:   len(products),
		Message: "Parfum unggulan berhasil diambil",
	}
	h.cache.Set(cacheKey, envelope)
	c.JSON(http.StatusOK, envelope)
}

// saveUploadedImage stores the multipart "image" file when one was sent;
// requests without one (including JSON requests) return "".
func (h *ProductHandler) saveUploadedImage(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return h.saver.Save(fh)
}
