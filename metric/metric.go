package metric

import "github.com/prometheus/client_golang/prometheus"

// SecondsBuckets covers request latencies from sub-millisecond lookups
// to slow cold name-file loads.
var SecondsBuckets = prometheus.ExponentialBuckets(0.0005, 2, 16)
