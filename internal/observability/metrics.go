package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChatRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total de mensajes recibidos en /chat",
		},
	)
	CatalogLoadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_load_failures_total",
			Help: "Total de fallas al cargar el catalogo",
		},
	)
	ProviderErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Errores del proveedor de IA por tipo",
		},
		[]string{"kind"},
	)
)

func Start(port string) {
	prometheus.MustRegister(ChatRequestsTotal, CatalogLoadFailures, ProviderErrorsTotal)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, mux)
}
