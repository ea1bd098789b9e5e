package dto

type LocationOpenRequest struct {
	Target string `json:"target" validate:"required,oneof=pickup dropoff"`
}

type LocationPickRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

type LocationSearchRequest struct {
	Query string `json:"query" validate:"max=256"`
}

// PackageRequest изображение передается в base64 и хранится как есть.
type PackageRequest struct {
	Type  string `json:"type" validate:"required,oneof=document food package large"`
	Image string `json:"image" validate:"omitempty,base64"`
}

// ContactRequest допускает частичное заполнение, полнота проверяется при переходе к обзору.
type ContactRequest struct {
	Phone    string `json:"phone" validate:"max=32"`
	WhatsApp string `json:"whatsapp" validate:"max=32"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
}

type StepRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next back"`
}

type ResetRequest struct {
	KeepPackage bool `json:"keep_package"`
}

type NotificationAckRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}
