package db

import (
	"context"
	"encoding/json"

	"citykitch/models"
)

// profileRow maps the jsonb list columns so sqlx can scan them.
type profileRow struct {
	models.CatererProfile
	SpecialtiesJSON  []byte `db:"specialties"`
	ImagesJSON       []byte `db:"images"`
	MenusJSON        []byte `db:"menus"`
	ServingAreasJSON []byte `db:"serving_areas"`
	CertificatesJSON []byte `db:"certificates"`
}

func (r *profileRow) profile() (*models.CatererProfile, error) {
	p := r.CatererProfile
	for _, pair := range []struct {
		raw []byte
		dst interface{}
	}{
		{r.SpecialtiesJSON, &p.Specialties},
		{r.ImagesJSON, &p.Images},
		{r.MenusJSON, &p.Menus},
		{r.ServingAreasJSON, &p.ServingAreas},
		{r.CertificatesJSON, &p.Certificates},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// UpsertCatererProfile writes the whole profile; a caterer has exactly one.
func (s *Storage) UpsertCatererProfile(ctx context.Context, p *models.CatererProfile) error {
	specialties, err := json.Marshal(p.Specialties)
	if err != nil {
		return err
	}
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	menus, err := json.Marshal(p.Menus)
	if err != nil {
		return err
	}
	areas, err := json.Marshal(p.ServingAreas)
	if err != nil {
		return err
	}
	certs, err := json.Marshal(p.Certificates)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO caterer_profiles
            (caterer_id, business_name, phone, description, specialties, images,
             menus, experience, serving_areas, certificates, updated_at)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
        ON CONFLICT (caterer_id) DO UPDATE SET
            business_name=EXCLUDED.business_name, phone=EXCLUDED.phone,
            description=EXCLUDED.description, specialties=EXCLUDED.specialties,
            images=EXCLUDED.images, menus=EXCLUDED.menus,
            experience=EXCLUDED.experience, serving_areas=EXCLUDED.serving_areas,
            certificates=EXCLUDED.certificates, updated_at=NOW()
        RETURNING updated_at`
	return s.db.QueryRowContext(ctx, query,
		p.CatererID, p.BusinessName, p.Phone, p.Description, specialties, images,
		menus, p.Experience, areas, certs).
		Scan(&p.UpdatedAt)
}

func (s *Storage) GetCatererProfile(ctx context.Context, catererID string) (*models.CatererProfile, error) {
	row := &profileRow{}
	query := `SELECT * FROM caterer_profiles WHERE caterer_id=$1`
	if err := s.db.GetContext(ctx, row, query, catererID); err != nil {
		return nil, notFound(err)
	}
	return row.profile()
}
