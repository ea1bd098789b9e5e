package courier

import "time"

type CourierDB struct {
	ID                  int64
	Name                string
	Phone               string
	Rating              float64
	CompletedDeliveries int64
	VehicleKind         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
