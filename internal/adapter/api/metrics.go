package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "whatameating_uploads_total",
	Help: "Photo uploads handled, by outcome",
}, []string{"outcome"})

var predictDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "whatameating_predict_duration_seconds",
	Help:    "Latency of the remote classification call",
	Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
})

var auditWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "whatameating_audit_writes_total",
	Help: "Access log writes, by result",
}, []string{"result"})

func ObservePredict(d time.Duration) {
	predictDuration.Observe(d.Seconds())
}

func ObserveAuditWrite(err error) {
	if err != nil {
		auditWrites.WithLabelValues("error").Inc()
		return
	}
	auditWrites.WithLabelValues("ok").Inc()
}
