//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_cancel_post_test
package location_cancel_post

type Service interface {
	Cancel()
}
