//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_contact_put_test
package booking_contact_put

import "courier-booking/internal/entities"

type Service interface {
	SetContact(contact entities.Contact)
}
