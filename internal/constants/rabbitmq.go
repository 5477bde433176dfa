package constants

// Имена очередей
const (
	QueuePaymentEvents = "payment_events"
)

// Ключи маршрутизации
const (
	RoutingKeyPaymentEvents = "payments.event.recorded"

	RoutingKeyImportReports = "notify.payments.import_report"
)

const (
	PaymentsExchange = "payments_exchange"
)
