package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleCaterer  Role = "caterer"
	RoleAdmin    Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleCaterer, RoleAdmin:
		return true
	default:
		return false
	}
}

type EventType string

const (
	EventWedding   EventType = "wedding"
	EventCorporate EventType = "corporate"
	EventBirthday  EventType = "birthday"
	EventOther     EventType = "other"
)

func ValidEventType(t EventType) bool {
	switch t {
	case EventWedding, EventCorporate, EventBirthday, EventOther:
		return true
	default:
		return false
	}
}

type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestPending   RequestStatus = "pending"
	RequestBooked    RequestStatus = "booked"
	RequestCompleted RequestStatus = "completed"
)

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestOpen, RequestPending, RequestBooked, RequestCompleted:
		return true
	default:
		return false
	}
}

type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidAccepted BidStatus = "accepted"
	BidRejected BidStatus = "rejected"
)

func ValidBidStatus(s BidStatus) bool {
	switch s {
	case BidPending, BidAccepted, BidRejected:
		return true
	default:
		return false
	}
}

// User is an account record. Role is assigned at registration and carried
// as a verified claim in the session token, never read from client state.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Role         Role      `db:"role" json:"role"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Request is a customer's posted catering need, the unit bids and messages
// attach to. Status only moves forward: open -> pending|booked -> completed.
type Request struct {
	ID            string        `db:"id" json:"id"`
	CustomerID    string        `db:"customer_id" json:"customerId"`
	CustomerEmail string        `db:"customer_email" json:"customerEmail"`
	EventType     EventType     `db:"event_type" json:"eventType" validate:"required,oneof=wedding corporate birthday other"`
	GuestCount    int           `db:"guest_count" json:"guestCount" validate:"required,min=1"`
	EventDate     time.Time     `db:"event_date" json:"eventDate"`
	Location      string        `db:"location" json:"location" validate:"required"`
	Budget        float64       `db:"budget" json:"budget" validate:"min=0"`
	Description   string        `db:"description" json:"description" validate:"required"`
	Status        RequestStatus `db:"status" json:"status"`
	CatererID     *string       `db:"caterer_id" json:"catererId,omitempty"`
	BookedAt      *time.Time    `db:"booked_at" json:"bookedAt,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
}

// Bid is a caterer's priced proposal against a Request. At most one bid per
// caterer per request, enforced by a unique index on (request_id, caterer_id).
type Bid struct {
	ID           string    `db:"id" json:"id"`
	RequestID    string    `db:"request_id" json:"requestId" validate:"required"`
	CatererID    string    `db:"caterer_id" json:"catererId"`
	CatererEmail string    `db:"caterer_email" json:"catererEmail"`
	Amount       float64   `db:"amount" json:"amount" validate:"min=0"`
	Proposal     string    `db:"proposal" json:"proposal" validate:"required"`
	Status       BidStatus `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Message is one immutable turn in a request's chat thread. Seq gives the
// thread a total order even when two messages share a creation timestamp.
type Message struct {
	ID          string    `db:"id" json:"id"`
	Seq         int64     `db:"seq" json:"-"`
	RequestID   string    `db:"request_id" json:"requestId"`
	SenderID    string    `db:"sender_id" json:"senderId"`
	SenderEmail string    `db:"sender_email" json:"senderEmail"`
	Body        string    `db:"body" json:"body"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// MenuItem is one entry on a caterer's published menu.
type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// CatererProfile is the public business page a caterer maintains. The list
// fields persist as JSON columns; portfolio images are blob-store handles.
type CatererProfile struct {
	CatererID    string     `db:"caterer_id" json:"catererId"`
	BusinessName string     `db:"business_name" json:"businessName" validate:"required,max=100"`
	Phone        string     `db:"phone" json:"phone"`
	Description  string     `db:"description" json:"description" validate:"max=1000"`
	Specialties  []string   `db:"-" json:"specialties"`
	Images       []string   `db:"-" json:"images"`
	Menus        []MenuItem `db:"-" json:"menus"`
	Experience   int        `db:"experience" json:"experience"`
	ServingAreas []string   `db:"-" json:"servingAreas"`
	Certificates []string   `db:"-" json:"certificates"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
