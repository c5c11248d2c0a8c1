package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	IsAdmin       bool      `json:"isAdmin"`
	IsSuperAdmin  bool      `json:"isSuperAdmin"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          user.Role.String(),
		IsAdmin:       user.IsAdmin(),
		IsSuperAdmin:  user.IsSuperAdmin(),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}

// LoginResponse carries the issued tokens.
type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

// CartResponse is the published cart of a device.
type CartResponse struct {
	Loading   bool                  `json:"loading"`
	Items     []entity.CartItem     `json:"items"`
	Lines     []entity.EnrichedLine `json:"lines"`
	Total     float64               `json:"total"`
	ItemCount int                   `json:"itemCount"`
}

func newCartResponse(output *usecase.CartOutput) *CartResponse {
	return &CartResponse{
		Loading:   output.Loading,
		Items:     output.Items,
		Lines:     output.Lines,
		Total:     output.Total,
		ItemCount: output.ItemCount,
	}
}

// CheckoutSummaryResponse is the order summary shown before payment.
type CheckoutSummaryResponse struct {
	Cart            *CartResponse `json:"cart"`
	Subtotal        float64       `json:"subtotal"`
	Coupon          string        `json:"coupon,omitempty"`
	DiscountPercent int           `json:"discountPercent"`
	Discount        float64       `json:"discount"`
	GrandTotal      float64       `json:"grandTotal"`
}

// PageResponse wraps one page of a listing.
type PageResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
