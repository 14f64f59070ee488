// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "paidvote"

// Credit sources
const (
	SourcePayment = "payment"
	SourceSMS     = "sms"
)

type Metrics struct {
	votesCast     *prometheus.CounterVec
	creditsIssued *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	resets        prometheus.Counter
}

// NewMetrics creates the service counters and registers them with reg.
// A nil reg leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		votesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "votes_cast_total",
			Help:      "Votes recorded, by candidate.",
		}, []string{"candidate"}),
		creditsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "credits_issued_total",
			Help:      "Vote credits granted, by source.",
		}, []string{"source"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejections_total",
			Help:      "Rejected operations, by error kind.",
		}, []string{"kind"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resets_total",
			Help:      "Administrative resets performed.",
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.votesCast, m.creditsIssued, m.rejections, m.resets} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
