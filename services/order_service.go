package services

import (
	"fmt"
	"log"

	"gin-storefront/apperrors"
	"gin-storefront/constants"
	"gin-storefront/models"
	"gin-storefront/payment"
	"gin-storefront/repositories"
)

type IOrderService interface {
	Create(userID uint, paymentToken string) (*models.Order, error)
	FindByID(orderID uint, caller *models.User) (*models.Order, error)
	FindByUser(userID uint) (*[]models.Order, error)
}

type OrderService struct {
	repository     repositories.IOrderRepository
	cartRepository repositories.ICartRepository
	gateway        payment.Gateway
	currency       string
}

func NewOrderService(
	repository repositories.IOrderRepository,
	cartRepository repositories.ICartRepository,
	gateway payment.Gateway,
	currency string,
) IOrderService {
	return &OrderService{
		repository:     repository,
		cartRepository: cartRepository,
		gateway:        gateway,
		currency:       currency,
	}
}

// Create turns the caller's cart into an order. The charge happens before any
// write: a gateway decline leaves both cart and orders untouched. Clearing
// the cart after the order exists is best-effort; a failure there leaves the
// captured charge and the order standing.
func (s *OrderService) Create(userID uint, paymentToken string) (*models.Order, error) {
	cartItems, err := s.cartRepository.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	var total uint
	for _, cartItem := range *cartItems {
		total += cartItem.Item.Price * cartItem.Quantity
	}
	log.Printf("Going to charge user %d for the amount of %d %s", userID, total, s.currency)

	charge, err := s.gateway.Charge(total, s.currency, paymentToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentFailed, err)
	}

	orderItems := make([]models.OrderItem, 0, len(*cartItems))
	cartItemIDs := make([]uint, 0, len(*cartItems))
	for _, cartItem := range *cartItems {
		orderItems = append(orderItems, models.OrderItem{
			Title:       cartItem.Item.Title,
			Description: cartItem.Item.Description,
			Image:       cartItem.Item.Image,
			LargeImage:  cartItem.Item.LargeImage,
			Price:       cartItem.Item.Price,
			Quantity:    cartItem.Quantity,
			UserID:      userID,
		})
		cartItemIDs = append(cartItemIDs, cartItem.ID)
	}

	order, err := s.repository.Create(models.Order{
		UserID: userID,
		Total:  charge.Amount,
		Charge: charge.ID,
		Items:  orderItems,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cartRepository.DeleteByIDs(cartItemIDs); err != nil {
		log.Printf("Failed to clear cart after order %d: %v", order.ID, err)
	}
	return order, nil
}

func (s *OrderService) FindByID(orderID uint, caller *models.User) (*models.Order, error) {
	order, err := s.repository.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	ownsOrder := order.UserID == caller.ID
	permissionErr := HasPermission(caller, constants.PermissionAdmin, constants.PermissionUser)
	if !ownsOrder || permissionErr != nil {
		return nil, apperrors.ErrUnauthorized
	}
	return order, nil
}

func (s *OrderService) FindByUser(userID uint) (*[]models.Order, error) {
	return s.repository.FindByUser(userID)
}
