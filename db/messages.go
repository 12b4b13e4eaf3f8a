package db

import (
	"context"

	"citykitch/models"
)

func (s *Storage) CreateMessage(ctx context.Context, m *models.Message) error {
	query := `
        INSERT INTO messages (id, request_id, sender_id, sender_email, body)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING seq, created_at`
	return s.db.QueryRowContext(ctx, query,
		m.ID, m.RequestID, m.SenderID, m.SenderEmail, m.Body).
		Scan(&m.Seq, &m.CreatedAt)
}

// GetThread returns the full thread for a request in non-decreasing creation
// order; seq breaks timestamp ties so every reader sees the same sequence.
func (s *Storage) GetThread(ctx context.Context, requestID string) ([]models.Message, error) {
	messages := []models.Message{}
	query := `SELECT * FROM messages WHERE request_id=$1 ORDER BY created_at ASC, seq ASC`
	err := s.db.SelectContext(ctx, &messages, query, requestID)
	return messages, err
}
