package db

import (
	"context"

	"citykitch/models"
)

func (s *Storage) CreateBid(ctx context.Context, b *models.Bid) error {
	query := `
        INSERT INTO bids (id, request_id, caterer_id, caterer_email, amount, proposal, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query,
		b.ID, b.RequestID, b.CatererID, b.CatererEmail, b.Amount, b.Proposal, b.Status).
		Scan(&b.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateBid
	}
	return err
}

func (s *Storage) GetBid(ctx context.Context, id string) (*models.Bid, error) {
	b := &models.Bid{}
	query := `SELECT * FROM bids WHERE id=$1`
	err := s.db.GetContext(ctx, b, query, id)
	return b, notFound(err)
}

func (s *Storage) GetBidsForRequest(ctx context.Context, requestID string) ([]models.Bid, error) {
	bids := []models.Bid{}
	query := `SELECT * FROM bids WHERE request_id=$1 ORDER BY created_at ASC`
	err := s.db.SelectContext(ctx, &bids, query, requestID)
	return bids, err
}

func (s *Storage) GetCatererBids(ctx context.Context, catererID string) ([]models.Bid, error) {
	bids := []models.Bid{}
	query := `SELECT * FROM bids WHERE caterer_id=$1 ORDER BY created_at DESC`
	err := s.db.SelectContext(ctx, &bids, query, catererID)
	return bids, err
}

// HasCatererBid is the advisory pre-check run before an insert; the unique
// index on (request_id, caterer_id) is what actually closes the race.
func (s *Storage) HasCatererBid(ctx context.Context, requestID, catererID string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM bids WHERE request_id=$1 AND caterer_id=$2`
	err := s.db.GetContext(ctx, &count, query, requestID, catererID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Storage) UpdateBidStatus(ctx context.Context, id string, status models.BidStatus) error {
	query := `UPDATE bids SET status=$1 WHERE id=$2`
	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
