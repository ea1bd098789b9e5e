package courier

import (
	"fmt"
	"strings"

	"courier-booking/internal/entities"
)

func validateCourier(c entities.Courier) error {
	if c.ID <= 0 {
		return fmt.Errorf("courier %d: %w", c.ID, ErrInvalidCourierID)
	}
	if !isValidName(c.Name) {
		return fmt.Errorf("courier %d: %w", c.ID, ErrInvalidName)
	}
	if !isValidPhone(c.Phone) {
		return fmt.Errorf("courier %d: %w", c.ID, ErrInvalidPhone)
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("courier %d: %w", c.ID, ErrInvalidRating)
	}
	if !c.VehicleKind.Valid() {
		return fmt.Errorf("courier %d: %w", c.ID, ErrInvalidVehicle)
	}
	return nil
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone допускает местный формат (0801...) и международный (+234...).
func isValidPhone(phone string) bool {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if phone == "" {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
