package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/simplesurance/mergebot/internal/logfields"
)

const metricNamespace = "mergebot_reconciler"

const (
	mutationsMetricName = "mutations_total"
	restCallsMetricName = "rest_calls_total"
	passesMetricName    = "passes_total"
)

const (
	kindLabel   = "kind"
	resultLabel = "result"
)

type resultLabelVal string

const (
	resultPlanned resultLabelVal = "planned"
	resultApplied resultLabelVal = "applied"
	resultFailed  resultLabelVal = "failed"
)

type passResultLabelVal string

const (
	passResultUptodate    passResultLabelVal = "uptodate"
	passResultDryRun      passResultLabelVal = "dry_run"
	passResultApplied     passResultLabelVal = "applied"
	passResultPlanFailed  passResultLabelVal = "plan_failed"
	passResultApplyFailed passResultLabelVal = "apply_failed"
)

type metricCollector struct {
	logger    *zap.Logger
	mutations *prometheus.CounterVec
	restCalls *prometheus.CounterVec
	passes    *prometheus.CounterVec
}

var metrics = newMetricCollector()

func newMetricCollector() *metricCollector {
	return &metricCollector{
		logger: zap.L().Named(loggerName).Named("metrics"),
		mutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      mutationsMetricName,
				Help:      "count of planned, applied and failed github graphql mutations",
			},
			[]string{kindLabel, resultLabel},
		),
		restCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      restCallsMetricName,
				Help:      "count of planned, sent and failed github rest calls",
			},
			[]string{resultLabel},
		),
		passes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricNamespace,
				Name:      passesMetricName,
				Help:      "count of reconciliation passes by result",
			},
			[]string{resultLabel},
		),
	}
}

func (m *metricCollector) logGetMetricFailed(metricName string, err error) {
	m.logger.Warn(
		"could not record metric",
		zap.String("metric", metricName),
		logfields.Event("recording_metric_failed"),
		zap.Error(err),
	)
}

func (m *metricCollector) MutationInc(kind MutationKind, result resultLabelVal) {
	cnt, err := m.mutations.GetMetricWith(prometheus.Labels{
		kindLabel:   string(kind),
		resultLabel: string(result),
	})
	if err != nil {
		m.logGetMetricFailed(mutationsMetricName, err)
		return
	}

	cnt.Inc()
}

func (m *metricCollector) RESTCallInc(result resultLabelVal) {
	cnt, err := m.restCalls.GetMetricWith(prometheus.Labels{resultLabel: string(result)})
	if err != nil {
		m.logGetMetricFailed(restCallsMetricName, err)
		return
	}

	cnt.Inc()
}

func (m *metricCollector) PlannedInc(plan *Plan) {
	for _, mut := range plan.Mutations {
		m.MutationInc(mut.Kind, resultPlanned)
	}

	for range plan.RESTCalls {
		m.RESTCallInc(resultPlanned)
	}
}

func (m *metricCollector) PassInc(result passResultLabelVal) {
	cnt, err := m.passes.GetMetricWith(prometheus.Labels{resultLabel: string(result)})
	if err != nil {
		m.logGetMetricFailed(passesMetricName, err)
		return
	}

	cnt.Inc()
}
