/*
Package monitoring provides Prometheus-based metrics collection for the
fileserver: operation counts and latencies, registry occupancy, access
control decisions, and process uptime.

Metrics are registered but not exposed over the network; the fileserver
has no network surface. An embedding process may expose the default
registry itself if it wants scraping.

Usage:

	metrics := monitoring.NewMetrics()

	timer := monitoring.NewTimer(metrics, "write")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
