package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records outcomes for the submit/render pipeline.
type CheckoutMetrics struct {
	submitDuration *prometheus.HistogramVec
	submitSuccess  *prometheus.CounterVec
	submitFailure  *prometheus.CounterVec
	invoices       prometheus.Counter
	renderFailures prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_submit_duration_seconds",
		Help:    "Duration of upstream order submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"register"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submit_success",
		Help: "Successful upstream order submissions.",
	}, []string{"register"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submit_failure",
		Help: "Failed upstream order submissions.",
	}, []string{"register"})
	invoices := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_invoices_generated",
		Help: "Invoices rendered to completion.",
	})
	renderFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_render_failure",
		Help: "Invoice renders that returned an error.",
	})
	reg.MustRegister(duration, success, failure, invoices, renderFailures)
	return &CheckoutMetrics{
		submitDuration: duration,
		submitSuccess:  success,
		submitFailure:  failure,
		invoices:       invoices,
		renderFailures: renderFailures,
	}
}

// ObserveSubmitDuration records how long the upstream submission took.
func (c *CheckoutMetrics) ObserveSubmitDuration(register string, duration time.Duration) {
	if c == nil || c.submitDuration == nil {
		return
	}
	c.submitDuration.WithLabelValues(normalizeLabel(register)).Observe(duration.Seconds())
}

// IncSubmitSuccess increments the success counter for the named register.
func (c *CheckoutMetrics) IncSubmitSuccess(register string) {
	if c == nil || c.submitSuccess == nil {
		return
	}
	c.submitSuccess.WithLabelValues(normalizeLabel(register)).Inc()
}

// IncSubmitFailure increments the failure counter for the named register.
func (c *CheckoutMetrics) IncSubmitFailure(register string) {
	if c == nil || c.submitFailure == nil {
		return
	}
	c.submitFailure.WithLabelValues(normalizeLabel(register)).Inc()
}

// IncInvoiceGenerated increments the rendered invoice counter.
func (c *CheckoutMetrics) IncInvoiceGenerated() {
	if c == nil || c.invoices == nil {
		return
	}
	c.invoices.Inc()
}

// IncRenderFailure increments the render failure counter.
func (c *CheckoutMetrics) IncRenderFailure() {
	if c == nil || c.renderFailures == nil {
		return
	}
	c.renderFailures.Inc()
}

func normalizeLabel(register string) string {
	if register == "" {
		return "unknown"
	}
	return register
}
