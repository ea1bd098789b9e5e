package dto

import "time"

type PingResponse struct {
	Message    *string   `json:"message,omitempty"`
	ServerTime time.Time `json:"server_time"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type PendingLocation struct {
	Target    string  `json:"target"`
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	HasPoint  bool    `json:"has_point"`
	Resolving bool    `json:"resolving"`
}

type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type Summary struct {
	Step            string           `json:"step"`
	Pickup          *Location        `json:"pickup"`
	Dropoff         *Location        `json:"dropoff"`
	PackageType     string           `json:"package_type"`
	HasPackageImage bool             `json:"has_package_image"`
	Contact         Contact          `json:"contact"`
	Pending         *PendingLocation `json:"pending"`
	DistanceKm      float64          `json:"distance_km"`
	EtaMinutes      int              `json:"eta_minutes"`
	Price           int64            `json:"price"`
	Currency        string           `json:"currency"`
	ActiveRides     int              `json:"active_rides"`
	MaxRides        int              `json:"max_rides"`
	Submitting      bool             `json:"submitting"`
	MapCenter       Point            `json:"map_center"`
}

type StepResponse struct {
	Step  string `json:"step"`
	Moved bool   `json:"moved"`
}

type SearchResponse struct {
	Started bool `json:"started"`
}

type Courier struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Rating              float64 `json:"rating"`
	CompletedDeliveries int64   `json:"completed_deliveries"`
	VehicleKind         string  `json:"vehicle_kind"`
}

type ContactLinkResponse struct {
	Link string `json:"link"`
}

type Ride struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	Courier         Courier   `json:"courier"`
	CourierPosition Point     `json:"courier_position"`
	PickupAddress   string    `json:"pickup_address"`
	Pickup          Point     `json:"pickup"`
	DropoffAddress  string    `json:"dropoff_address"`
	Dropoff         Point     `json:"dropoff"`
	PackageType     string    `json:"package_type"`
	CreatedAt       time.Time `json:"created_at"`
}

type RideTracking struct {
	Ride
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes int     `json:"eta_minutes"`
}

type RidesResponse struct {
	Rides       []RideTracking `json:"rides"`
	ActiveRides int            `json:"active_rides"`
	MaxRides    int            `json:"max_rides"`
}

type CancelledRidesResponse struct {
	Cancelled []Ride `json:"cancelled"`
}

type Particle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Celebration struct {
	ID              string     `json:"id"`
	RideID          string     `json:"ride_id"`
	Courier         Courier    `json:"courier"`
	Bursts          []Particle `json:"bursts"`
	Confetti        []Particle `json:"confetti"`
	BurstsVisible   bool       `json:"bursts_visible"`
	ConfettiVisible bool       `json:"confetti_visible"`
}
