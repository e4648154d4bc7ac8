package utils

import (
	"log"
	"time"

	"github.com/Kweyu/resto-api/models"
	"github.com/go-resty/resty/v2"
)

// OrderWebhook posts order lifecycle events to an external dashboard URL.
// It implements services.OrderObserver. Delivery is best effort: failures are
// logged and never surface to the operation that triggered them.
type OrderWebhook struct {
	client *resty.Client
	url    string
}

func NewOrderWebhook(url string) *OrderWebhook {
	return &OrderWebhook{
		client: resty.New().SetTimeout(5 * time.Second),
		url:    url,
	}
}

func (w *OrderWebhook) OrderCreated(order *models.Order) {
	w.post("order.created", order)
}

func (w *OrderWebhook) OrderUpdated(order *models.Order) {
	w.post("order.updated", order)
}

func (w *OrderWebhook) post(event string, order *models.Order) {
	payload := map[string]any{
		"event":   event,
		"orderId": order.ID,
		"status":  order.Status,
		"order":   order,
	}

	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(w.url)
	if err != nil {
		log.Printf("Webhook delivery failed for %s on order %d: %v", event, order.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Webhook for %s on order %d returned status %d", event, order.ID, resp.StatusCode())
	}
}
