package app

import (
	"courier-booking/internal/handlers/rest/booking_contact_put"
	"courier-booking/internal/handlers/rest/booking_get"
	"courier-booking/internal/handlers/rest/booking_package_put"
	"courier-booking/internal/handlers/rest/booking_reset_post"
	"courier-booking/internal/handlers/rest/booking_step_post"
	"courier-booking/internal/handlers/rest/booking_submit_post"
	"courier-booking/internal/handlers/rest/courier_contact_get"
	"courier-booking/internal/handlers/rest/couriers_get"
	"courier-booking/internal/handlers/rest/location_cancel_post"
	"courier-booking/internal/handlers/rest/location_confirm_post"
	"courier-booking/internal/handlers/rest/location_open_post"
	"courier-booking/internal/handlers/rest/location_pick_post"
	"courier-booking/internal/handlers/rest/location_search_post"
	"courier-booking/internal/handlers/rest/notification_ack_post"
	"courier-booking/internal/handlers/rest/notification_get"
	"courier-booking/internal/handlers/rest/ride_delete"
	"courier-booking/internal/handlers/rest/rides_delete"
	"courier-booking/internal/handlers/rest/rides_get"
	"courier-booking/internal/handlers/ws/rides_stream"
	"courier-booking/pkg/background"
)

// Application собранная сессия бронирования и ее фоновые задачи.
type Application struct {
	ServiceBooking      ServiceBooking
	ServiceLocation     ServiceLocation
	ServiceRides        ServiceRides
	ServiceNotification ServiceNotification
	ServiceCourier      ServiceCourier
	BackgroundWorkers   *background.Worker
}

type ServiceBooking interface {
	booking_get.Service
	booking_package_put.Service
	booking_contact_put.Service
	booking_step_post.Service
	booking_reset_post.Service
	booking_submit_post.Service
	ride_delete.Service
	rides_delete.Service
}

// ServiceLocation кроме HTTP-операций умеет дождаться и остановить геокодирование при выключении.
type ServiceLocation interface {
	location_open_post.Service
	location_pick_post.Service
	location_search_post.Service
	location_confirm_post.Service
	location_cancel_post.Service
	Close()
}

type ServiceRides interface {
	rides_get.Service
	rides_stream.Service
}

type ServiceNotification interface {
	notification_get.Service
	notification_ack_post.Service
}

type ServiceCourier interface {
	couriers_get.Service
	courier_contact_get.Service
}
