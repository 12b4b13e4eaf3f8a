package db

import (
	"context"
	"time"

	"citykitch/models"
)

func (s *Storage) CreateRequest(ctx context.Context, r *models.Request) error {
	query := `
        INSERT INTO requests
            (id, customer_id, customer_email, event_type, guest_count, event_date,
             location, budget, description, status)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING created_at`
	return s.db.QueryRowContext(ctx, query,
		r.ID, r.CustomerID, r.CustomerEmail, r.EventType, r.GuestCount, r.EventDate,
		r.Location, r.Budget, r.Description, r.Status).
		Scan(&r.CreatedAt)
}

func (s *Storage) GetRequest(ctx context.Context, id string) (*models.Request, error) {
	r := &models.Request{}
	query := `SELECT * FROM requests WHERE id=$1`
	err := s.db.GetContext(ctx, r, query, id)
	return r, notFound(err)
}

// GetRequests returns the whole board, newest first. Every caterer and the
// admin see all requests regardless of owner.
func (s *Storage) GetRequests(ctx context.Context) ([]models.Request, error) {
	requests := []models.Request{}
	query := `SELECT * FROM requests ORDER BY created_at DESC`
	err := s.db.SelectContext(ctx, &requests, query)
	return requests, err
}

func (s *Storage) GetCustomerRequests(ctx context.Context, customerID string) ([]models.Request, error) {
	requests := []models.Request{}
	query := `SELECT * FROM requests WHERE customer_id=$1 ORDER BY created_at DESC`
	err := s.db.SelectContext(ctx, &requests, query, customerID)
	return requests, err
}

func (s *Storage) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) error {
	query := `UPDATE requests SET status=$1 WHERE id=$2`
	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteRequest(ctx context.Context, id string) error {
	query := `DELETE FROM requests WHERE id=$1`
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// AcceptBid books a request in one transaction: the chosen bid is accepted,
// sibling pending bids are rejected, and the request advances to booked with
// the winning caterer and booking time stamped on it.
func (s *Storage) AcceptBid(ctx context.Context, requestID, bidID, catererID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE bids SET status=$1 WHERE id=$2 AND request_id=$3 AND status=$4`,
		models.BidAccepted, bidID, requestID, models.BidPending)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bids SET status=$1 WHERE request_id=$2 AND id<>$3 AND status=$4`,
		models.BidRejected, requestID, bidID, models.BidPending)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE requests SET status=$1, caterer_id=$2, booked_at=$3 WHERE id=$4`,
		models.RequestBooked, catererID, time.Now().UTC(), requestID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
