package walletwatch

// CycleReport summarizes one detection cycle.
type CycleReport struct {
	CycleID             string // UUIDv7 identifying the cycle in logs
	Checked             int    // Transactions returned by the fetcher
	Detected            int    // New outgoing transfers found
	NewAlerts           int    // Alerts delivered and recorded in the AlertedSet
	FailedNotifications int    // Alerts whose delivery failed
	FetchErr            error  // Fetch failure absorbed as an empty result, if any
}
