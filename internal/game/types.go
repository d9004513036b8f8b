package game

// Message represents an on-screen message that expires after a while.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
}
