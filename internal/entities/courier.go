package entities

type Courier struct {
	ID                  int64
	Name                string
	Phone               string
	Rating              float64
	CompletedDeliveries int64
	VehicleKind         VehicleKind
}

type VehicleKind string

const (
	Bike VehicleKind = "bike"
	Car  VehicleKind = "car"
)

const DefaultVehicleKind = Bike

func (k VehicleKind) String() string {
	return string(k)
}

func (k VehicleKind) Valid() bool {
	switch k {
	case Bike, Car:
		return true
	default:
		return false
	}
}
