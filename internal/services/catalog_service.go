package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"
	"tourbooking/internal/utils"
)

// CatalogService serves the storefront catalog and the admin package CRUD.
type CatalogService struct {
	PackageRepo repositories.PackageRepository
	DB          *sql.DB
	RequestID   string
}

func (s CatalogService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CatalogService) packages() repositories.PackageRepository {
	if s.PackageRepo.DB != nil {
		return s.PackageRepo
	}
	return repositories.PackageRepository{DB: s.db()}
}

func (s CatalogService) ListPackages() ([]models.TravelPackage, error) {
	return s.packages().ListPackages()
}

func (s CatalogService) GetPackageBySlug(slug string) (models.TravelPackage, error) {
	return s.packages().GetPackageBySlug(slug)
}

func (s CatalogService) GetOption(id int64) (models.TourOption, error) {
	return s.packages().GetOptionByID(id)
}

func (s CatalogService) CreatePackage(p models.TravelPackage) (models.TravelPackage, error) {
	p.Title = utils.NormalizeSpace(p.Title)
	if p.Title == "" {
		return models.TravelPackage{}, domain.ValidationError{Field: "title", Msg: "title is required"}
	}
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = utils.Slugify(p.Title)
	}

	id, err := s.packages().CreatePackage(p)
	if err != nil {
		return models.TravelPackage{}, err
	}
	p.ID = id
	utils.LogEvent(s.RequestID, "catalog", "create_package", fmt.Sprintf("package_id=%d slug=%s", id, p.Slug))
	return p, nil
}

func (s CatalogService) UpdatePackage(id int64, upd repositories.PackageUpdate) error {
	if err := s.packages().UpdatePackage(id, upd); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "update_package", fmt.Sprintf("package_id=%d", id))
	return nil
}

func (s CatalogService) DeletePackage(id int64) error {
	if err := s.packages().DeletePackage(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "delete_package", fmt.Sprintf("package_id=%d", id))
	return nil
}

func (s CatalogService) ListCategories() ([]models.Category, error) {
	return s.packages().ListCategories()
}

func (s CatalogService) CreateCategory(c models.Category) (models.Category, error) {
	c.Name = utils.NormalizeSpace(c.Name)
	if c.Name == "" {
		return models.Category{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	id, err := s.packages().CreateCategory(c)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = id
	utils.LogEvent(s.RequestID, "catalog", "create_category", fmt.Sprintf("category_id=%d", id))
	return c, nil
}

func (s CatalogService) DeleteCategory(id int64) error {
	return s.packages().DeleteCategory(id)
}
