package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"roshanservice/models"
)

type PostgresShopRepo struct {
	DB *sql.DB
}

func NewPostgresShopRepo(db *sql.DB) *PostgresShopRepo {
	return &PostgresShopRepo{DB: db}
}

// SaveShopProfile inserts or updates the slip-header details.
func (r *PostgresShopRepo) SaveShopProfile(ctx context.Context, profile *models.ShopProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	phonesJSON, err := json.Marshal(profile.Phones)
	if err != nil {
		return err
	}

	// ID set means UPDATE, otherwise INSERT
	if profile.ID > 0 {
		_, err = r.DB.ExecContext(ctx, `
			UPDATE shop_profile
			SET shop_name=$1, department=$2, address=$3, city=$4, pincode=$5,
				phones=$6, email=$7, gstin=$8, footnote=$9, created_at=$10
			WHERE id=$11
		`, profile.ShopName, profile.Department, profile.Address, profile.City,
			profile.Pincode, phonesJSON, profile.Email, profile.GSTIN,
			profile.Footnote, profile.CreatedAt, profile.ID)
	} else {
		_, err = r.DB.ExecContext(ctx, `
			INSERT INTO shop_profile
			(shop_name, department, address, city, pincode, phones, email, gstin, footnote, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, profile.ShopName, profile.Department, profile.Address, profile.City,
			profile.Pincode, phonesJSON, profile.Email, profile.GSTIN,
			profile.Footnote, profile.CreatedAt)
	}

	return err
}

// GetShopProfile fetches the latest saved profile.
func (r *PostgresShopRepo) GetShopProfile(ctx context.Context) (*models.ShopProfile, error) {
	profile := &models.ShopProfile{}
	var phonesJSON []byte

	err := r.DB.QueryRowContext(ctx, `
		SELECT id, shop_name, department, address, city, pincode, phones, email, gstin, footnote, created_at
		FROM shop_profile
		ORDER BY id DESC LIMIT 1
	`).Scan(&profile.ID, &profile.ShopName, &profile.Department, &profile.Address,
		&profile.City, &profile.Pincode, &phonesJSON, &profile.Email,
		&profile.GSTIN, &profile.Footnote, &profile.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if len(phonesJSON) > 0 {
		if err := json.Unmarshal(phonesJSON, &profile.Phones); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
