package cmd

import "time"

// Config carries the process configuration, loaded from environment
// variables by the entry point.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MatchPollInterval is how often the dispatcher runs a matching cycle.
	MatchPollInterval time.Duration

	// OfferTTL is how long a technician has to answer an offer.
	OfferTTL time.Duration
}
