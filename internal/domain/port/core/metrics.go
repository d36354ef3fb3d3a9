package core

// SwapOutcome labels how a swap request ended
type SwapOutcome string

// Swap outcomes
const (
	SwapCompleted        SwapOutcome = "completed"
	SwapRejected         SwapOutcome = "rejected"
	SwapQuoteUnavailable SwapOutcome = "quote_unavailable"
	SwapFailed           SwapOutcome = "failed"
)

// MetricsRecorder collects business counters
type MetricsRecorder interface {
	RecordSwap(outcome SwapOutcome)
}
