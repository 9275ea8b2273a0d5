package metrics

// Prometheus metric namespaces
const (
	namespaceMultiVM = "multivm"
)

// Adapter subsystems
const (
	subsystemAdapter = "adapter"
	subsystemReplay  = "replay"
	subsystemCache   = "cache"
)
