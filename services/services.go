package services

import (
	"dalshop-gateway/clients"
	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/utils/logger"
)

// Service implements ServiceContainerInterface
type Service struct {
	sessionService  SessionServiceInterface
	cartService     CartServiceInterface
	checkoutService CheckoutServiceInterface
}

// NewService creates a new service container with all dependencies injected
func NewService(
	identity *clients.IdentityClient,
	backend *clients.Backend,
	sessions repository.SessionRepositoryInterface,
	log logger.Logger,
	config *models.Config,
) ServiceContainerInterface {
	cartClient := clients.NewCartClient(backend)
	orderClient := clients.NewOrderClient(backend)

	return &Service{
		sessionService:  NewSessionService(identity, sessions, log),
		cartService:     NewCartService(cartClient, log),
		checkoutService: NewCheckoutService(orderClient, cartClient, log),
	}
}

// GetSessionService returns the session service interface
func (s *Service) GetSessionService() SessionServiceInterface {
	return s.sessionService
}

// GetCartService returns the cart service interface
func (s *Service) GetCartService() CartServiceInterface {
	return s.cartService
}

// GetCheckoutService returns the checkout service interface
func (s *Service) GetCheckoutService() CheckoutServiceInterface {
	return s.checkoutService
}
