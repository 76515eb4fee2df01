package handlers

import (
	"net/http"

	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/repositories"
	"tourbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/packages
func ListPackages(c *gin.Context) {
	pkgs, err := catalogService(c).ListPackages()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// GET /api/packages/:slug
func GetPackageBySlug(c *gin.Context) {
	pkg, err := catalogService(c).GetPackageBySlug(c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// POST /api/packages (admin)
func CreatePackage(c *gin.Context) {
	var req models.TravelPackage
	if !BindJSONOrError(c, &req) {
		return
	}
	pkg, err := catalogService(c).CreatePackage(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

type packageUpdateRequest struct {
	CategoryID  *int64  `json:"category_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Active      *bool   `json:"active"`
}

// PUT /api/packages/:id (admin)
func UpdatePackage(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req packageUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	upd := repositories.PackageUpdate{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      req.Active,
	}
	if err := catalogService(c).UpdatePackage(id, upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DELETE /api/packages/:id (admin)
func DeletePackage(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := catalogService(c).DeletePackage(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GET /api/categories
func ListCategories(c *gin.Context) {
	cats, err := catalogService(c).ListCategories()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// POST /api/categories (admin)
func CreateCategory(c *gin.Context) {
	var req models.Category
	if !BindJSONOrError(c, &req) {
		return
	}
	cat, err := catalogService(c).CreateCategory(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// DELETE /api/categories/:id (admin)
func DeleteCategory(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := catalogService(c).DeleteCategory(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
