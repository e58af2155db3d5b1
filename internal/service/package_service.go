package service

import (
	"stagebook/internal/entities"
	"stagebook/internal/repository"
)

type PackageService struct {
	Repo *repository.PackageRepository
}

func NewPackageService(repo *repository.PackageRepository) *PackageService {
	return &PackageService{Repo: repo}
}

// Catalog lists every active provider and custom package.
func (s *PackageService) Catalog() (*entities.PackageCatalog, error) {
	packages, err := s.Repo.ListEquipmentPackages()
	if err != nil {
		return nil, err
	}
	customPackages, err := s.Repo.ListCustomPackages()
	if err != nil {
		return nil, err
	}

	catalog := &entities.PackageCatalog{}
	for _, p := range packages {
		catalog.Packages = append(catalog.Packages, entities.PackageResponse{
			ID:         p.ID,
			ProviderID: p.ProviderID,
			Name:       p.Name,
			TotalPrice: p.TotalPrice,
		})
	}
	for _, p := range customPackages {
		catalog.CustomPackages = append(catalog.CustomPackages, entities.CustomPackageResponse{
			ID:          p.ID,
			Name:        p.Name,
			PricePerDay: p.PricePerDay,
		})
	}
	return catalog, nil
}
