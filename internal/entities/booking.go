package entities

import (
	"strings"

	"courier-booking/pkg/geo"
)

type BookingStep int

const (
	StepLocations BookingStep = iota + 1
	StepContact
	StepReview
)

func (s BookingStep) String() string {
	switch s {
	case StepLocations:
		return "locations"
	case StepContact:
		return "contact"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

type LocationTarget string

const (
	TargetNone    LocationTarget = ""
	TargetPickup  LocationTarget = "pickup"
	TargetDropoff LocationTarget = "dropoff"
)

func (t LocationTarget) String() string {
	if t == TargetNone {
		return "none"
	}
	return string(t)
}

func (t LocationTarget) Valid() bool {
	return t == TargetPickup || t == TargetDropoff
}

// Location без точки считается не выбранной.
type Location struct {
	Address string
	Point   *geo.Point
}

func (l Location) IsSet() bool {
	return l.Point != nil
}

func (l Location) Clone() Location {
	if l.Point == nil {
		return Location{Address: l.Address}
	}
	p := *l.Point
	return Location{Address: l.Address, Point: &p}
}

type PackageType string

const (
	PackageDocument PackageType = "document"
	PackageFood     PackageType = "food"
	PackageParcel   PackageType = "package"
	PackageLarge    PackageType = "large"
)

const DefaultPackageType = PackageDocument

func (t PackageType) String() string {
	return string(t)
}

func (t PackageType) Valid() bool {
	switch t {
	case PackageDocument, PackageFood, PackageParcel, PackageLarge:
		return true
	default:
		return false
	}
}

type Contact struct {
	Phone    string
	WhatsApp string
	Email    string
}

// Complete проверяет, что все три поля заполнены.
func (c Contact) Complete() bool {
	return strings.TrimSpace(c.Phone) != "" &&
		strings.TrimSpace(c.WhatsApp) != "" &&
		strings.TrimSpace(c.Email) != ""
}

type BookingDraft struct {
	Step         BookingStep
	Pickup       Location
	Dropoff      Location
	PackageType  PackageType
	PackageImage []byte
	Contact      Contact
}

func NewBookingDraft() BookingDraft {
	return BookingDraft{
		Step:        StepLocations,
		PackageType: DefaultPackageType,
	}
}

func (d BookingDraft) Clone() BookingDraft {
	clone := d
	clone.Pickup = d.Pickup.Clone()
	clone.Dropoff = d.Dropoff.Clone()
	clone.PackageImage = cloneBytes(d.PackageImage)
	return clone
}

// Order это замороженный снимок черновика на момент отправки.
type Order struct {
	PickupAddress  string
	Pickup         geo.Point
	DropoffAddress string
	Dropoff        geo.Point
	PackageType    PackageType
	PackageImage   []byte
	Contact        Contact
}

func (o Order) Clone() Order {
	clone := o
	clone.PackageImage = cloneBytes(o.PackageImage)
	return clone
}

type PendingLocation struct {
	Target    LocationTarget
	Point     *geo.Point
	Address   string
	Resolving bool
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
