package httpx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lyntsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lyntr_lynts_created_total",
		Help: "Number of lynts successfully created.",
	})
	lyntReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lyntr_lynt_reads_total",
		Help: "Number of successful single-lynt reads.",
	})
	avatarUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lyntr_avatar_uploads_total",
		Help: "Number of successful avatar uploads.",
	})
	errorResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lyntr_error_responses_total",
		Help: "Error responses served, by HTTP status.",
	}, []string{"status"})
)
