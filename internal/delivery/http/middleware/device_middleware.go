package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase/cartengine"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderXDeviceID carries the browser/device identity the guest cart is scoped to.
	HeaderXDeviceID = "X-Device-Id"

	keyDeviceID = "deviceID"
)

// DeviceMiddleware resolves the device of every request and reports its identity to the session provider.
type DeviceMiddleware struct {
	registry *cartengine.Registry
	sessions service.SessionProvider
}

// NewDeviceMiddleware is the constructor for DeviceMiddleware.
func NewDeviceMiddleware(registry *cartengine.Registry, sessions service.SessionProvider) *DeviceMiddleware {
	return &DeviceMiddleware{registry: registry, sessions: sessions}
}

// Process reads X-Device-Id, issuing a new one when absent, and echoes it back.
// The device's engine is created before the session is observed so sign-in on a
// fresh device still triggers the merge. It must run after AuthMiddleware.Identify.
func (m *DeviceMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceID := uuid.New()
		if raw := strings.TrimSpace(c.Request().Header.Get(HeaderXDeviceID)); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return response.HandleAppError(c, domainerrors.ErrDeviceIDInvalid)
			}
			deviceID = parsed
		}

		SetDeviceID(c, deviceID)
		c.Response().Header().Set(HeaderXDeviceID, deviceID.String())

		m.registry.Engine(deviceID)

		var userID *uuid.UUID
		if id, ok := GetUserID(c); ok {
			userID = &id
		}
		m.sessions.Observe(c.Request().Context(), deviceID, userID)

		return next(c)
	}
}

// SetDeviceID stores the resolved device in echo.Context.
func SetDeviceID(c echo.Context, deviceID uuid.UUID) {
	c.Set(keyDeviceID, deviceID)
}

// GetDeviceID returns the device resolved by DeviceMiddleware.
func GetDeviceID(c echo.Context) (uuid.UUID, bool) {
	deviceID, ok := c.Get(keyDeviceID).(uuid.UUID)

	return deviceID, ok
}
