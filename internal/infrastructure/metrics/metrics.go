package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Number of products stored.",
	})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Number of orders stored.",
	})

	OrderItems = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_items_total",
		Help: "Number of line items across stored orders.",
	})

	MongoDBUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mongodb_up",
		Help: "1 when the last MongoDB ping succeeded, 0 otherwise.",
	})
)

func SetMongoDBUp(up bool) {
	if up {
		MongoDBUp.Set(1)
		return
	}
	MongoDBUp.Set(0)
}
