package handlers

import (
	"context"

	"citykitch/models"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreateRequest(ctx context.Context, r *models.Request) error
	GetRequest(ctx context.Context, id string) (*models.Request, error)
	GetRequests(ctx context.Context) ([]models.Request, error)
	GetCustomerRequests(ctx context.Context, customerID string) ([]models.Request, error)
	UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) error
	DeleteRequest(ctx context.Context, id string) error
	AcceptBid(ctx context.Context, requestID, bidID, catererID string) error

	CreateBid(ctx context.Context, b *models.Bid) error
	GetBid(ctx context.Context, id string) (*models.Bid, error)
	GetBidsForRequest(ctx context.Context, requestID string) ([]models.Bid, error)
	GetCatererBids(ctx context.Context, catererID string) ([]models.Bid, error)
	HasCatererBid(ctx context.Context, requestID, catererID string) (bool, error)
	UpdateBidStatus(ctx context.Context, id string, status models.BidStatus) error

	CreateMessage(ctx context.Context, m *models.Message) error
	GetThread(ctx context.Context, requestID string) ([]models.Message, error)

	UpsertCatererProfile(ctx context.Context, p *models.CatererProfile) error
	GetCatererProfile(ctx context.Context, catererID string) (*models.CatererProfile, error)
}
