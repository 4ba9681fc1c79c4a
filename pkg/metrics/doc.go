// Package metrics exports validation runs as Prometheus metrics.
//
// A Collector implements validation.Observer; pass it to validators with
// validation.WithObserver:
//
//	c, err := metrics.NewCollector(cfg, prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//	v := validation.New[*Order](validation.WithName("order"), validation.WithObserver(c))
package metrics
