package services

import (
	"context"

	"dalshop-gateway/clients"
	"dalshop-gateway/models"
)

// IdentityProviderInterface is the slice of the identity client the session
// service needs.
type IdentityProviderInterface interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	ConfirmVerification(ctx context.Context, email, code string) error
	ResendVerificationCode(ctx context.Context, email string) error
	SecurityAnswer(ctx context.Context, email, question string) (string, error)
	CipherShiftKey(ctx context.Context, email string) (int, error)
}

// CartAPIInterface is the cart resource client contract.
type CartAPIInterface interface {
	Add(ctx context.Context, userID, productID string, qty int) error
	Update(ctx context.Context, userID, productID string, qty int) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*models.Cart, error)
}

// OrderAPIInterface is the order resource client contract.
type OrderAPIInterface interface {
	Create(ctx context.Context, userID string) (*clients.CreateOrderResult, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// SessionServiceInterface defines the contract for the session lifecycle
type SessionServiceInterface interface {
	BeginAuthentication(ctx context.Context, email, password string) (*models.AuthProof, error)
	CommitAuthentication(ctx context.Context, req models.CommitRequest) (*models.Session, error)
	EndSession(ctx context.Context, sessionID string) error
	Register(ctx context.Context, req models.RegisterRequest) error
	ConfirmVerification(ctx context.Context, email, code string) error
	ResendVerificationCode(ctx context.Context, email string) error
}

// CartServiceInterface defines the contract for cart operations
type CartServiceInterface interface {
	View(ctx context.Context, userID string) (*models.Cart, error)
	Add(ctx context.Context, userID string, m models.CartMutation) (*models.Cart, error)
	Update(ctx context.Context, userID string, m models.CartMutation) (*models.Cart, error)
	Remove(ctx context.Context, userID, productID string) (*models.Cart, error)
}

// CheckoutServiceInterface defines the contract for the checkout flow
type CheckoutServiceInterface interface {
	PlaceOrder(ctx context.Context, userID string) (*models.CheckoutResult, error)
}

// ServiceContainerInterface defines the main service container contract
type ServiceContainerInterface interface {
	GetSessionService() SessionServiceInterface
	GetCartService() CartServiceInterface
	GetCheckoutService() CheckoutServiceInterface
}
