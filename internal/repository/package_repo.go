package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"stagebook/internal/db"
)

type PackageRepository struct {
	DB *sql.DB
}

func NewPackageRepository(database *sql.DB) *PackageRepository {
	return &PackageRepository{DB: database}
}

func (r *PackageRepository) ListEquipmentPackages() ([]db.EquipmentPackage, error) {
	rows, err := r.DB.Query(`
		SELECT id, provider_id, name, total_price, active
		FROM equipment_packages
		WHERE active = TRUE
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying equipment packages: %w", err)
	}
	defer rows.Close()

	var packages []db.EquipmentPackage
	for rows.Next() {
		var p db.EquipmentPackage
		if err := rows.Scan(&p.ID, &p.ProviderID, &p.Name, &p.TotalPrice, &p.Active); err != nil {
			return nil, fmt.Errorf("error scanning equipment package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *PackageRepository) ListCustomPackages() ([]db.CustomPackage, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price_per_day, active
		FROM custom_packages
		WHERE active = TRUE
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying custom packages: %w", err)
	}
	defer rows.Close()

	var packages []db.CustomPackage
	for rows.Next() {
		var p db.CustomPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.PricePerDay, &p.Active); err != nil {
			return nil, fmt.Errorf("error scanning custom package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// GetEquipmentPackagesByIDs resolves selected provider packages. Missing
// IDs are an error; quoting against stale package references must fail.
func (r *PackageRepository) GetEquipmentPackagesByIDs(ids []string) ([]db.EquipmentPackage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.DB.Query(`
		SELECT id, provider_id, name, total_price, active
		FROM equipment_packages
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying equipment packages: %w", err)
	}
	defer rows.Close()

	var packages []db.EquipmentPackage
	for rows.Next() {
		var p db.EquipmentPackage
		if err := rows.Scan(&p.ID, &p.ProviderID, &p.Name, &p.TotalPrice, &p.Active); err != nil {
			return nil, fmt.Errorf("error scanning equipment package: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(packages) != len(ids) {
		return nil, fmt.Errorf("unknown equipment package in selection")
	}
	return packages, nil
}

func (r *PackageRepository) GetCustomPackagesByIDs(ids []string) ([]db.CustomPackage, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.DB.Query(`
		SELECT id, name, price_per_day, active
		FROM custom_packages
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error querying custom packages: %w", err)
	}
	defer rows.Close()

	var packages []db.CustomPackage
	for rows.Next() {
		var p db.CustomPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.PricePerDay, &p.Active); err != nil {
			return nil, fmt.Errorf("error scanning custom package: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(packages) != len(ids) {
		return nil, fmt.Errorf("unknown custom package in selection")
	}
	return packages, nil
}
