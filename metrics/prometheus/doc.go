// Package prometheus exports supermatrix metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, err := smprom.NewCollector(reg, "supermatrix")
//	if err != nil { ... }
//	m := supermatrix.Adopt(raw, supermatrix.WithMetricsCollector(collector))
package prometheus
