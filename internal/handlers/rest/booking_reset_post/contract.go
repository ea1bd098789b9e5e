//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_reset_post_test
package booking_reset_post

type Service interface {
	ResetDraft()
	RepeatLastBooking() error
}
