//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_ack_post_test
package notification_ack_post

type Service interface {
	Acknowledge(id string) error
}
