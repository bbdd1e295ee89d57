package app

import (
	"fulfillment/internal/handlers/rest/courier_get"
	"fulfillment/internal/handlers/rest/courier_post"
	"fulfillment/internal/handlers/rest/courier_put"
	"fulfillment/internal/handlers/rest/couriers_get"
	"fulfillment/internal/handlers/rest/couriers_leaderboard_get"
	"fulfillment/internal/handlers/rest/delivery_post"
	"fulfillment/internal/handlers/rest/notification_read_post"
	"fulfillment/internal/handlers/rest/notifications_get"
	"fulfillment/internal/handlers/rest/order_assign_post"
	"fulfillment/internal/handlers/rest/order_candidates_get"
	"fulfillment/internal/handlers/rest/order_delivery_post"
	"fulfillment/internal/handlers/rest/order_fail_post"
	"fulfillment/internal/handlers/rest/order_get"
	"fulfillment/internal/handlers/rest/order_payment_get"
	"fulfillment/internal/handlers/rest/order_pickup_post"
	"fulfillment/internal/handlers/rest/order_post"
	"fulfillment/internal/handlers/rest/orders_get"
	"fulfillment/internal/handlers/rest/rating_post"
	"fulfillment/internal/handlers/rest/rating_put"
	"fulfillment/internal/service/notifier"
	"fulfillment/pkg/background"
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceReputation ServiceReputation
	ServiceNotifier   ServiceNotifier
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
	couriers_leaderboard_get.Service
}

type ServiceOrder interface {
	order_post.Service
	delivery_post.Service
	order_get.Service
	orders_get.Service
	order_candidates_get.Service
	order_assign_post.Service
	order_pickup_post.Service
	order_delivery_post.Service
	order_fail_post.Service
	order_payment_get.Service
}

type ServiceReputation interface {
	rating_post.Service
	rating_put.Service
}

type ServiceNotifier interface {
	notifications_get.Service
	notification_read_post.Service
}

type NotificationWorkerApp struct {
	Notifier *notifier.Notifier
}
