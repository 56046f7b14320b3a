package constants

import "time"

const (
	// Simulated settlement delays
	ConvertProcessingDelay  = 2500 * time.Millisecond
	TransferProcessingDelay = 2500 * time.Millisecond
	CardCreateDelay         = 3000 * time.Millisecond
	EngineActivationDelay   = 2500 * time.Millisecond

	// PIN confirmation delays (visual feedback for the last digit)
	TransferPinDelay = 300 * time.Millisecond
	CardPinDelay     = 500 * time.Millisecond

	StatusBannerDelay   = 3000 * time.Millisecond
	RateRefreshInterval = 60 * time.Second
)

const (
	PinLength = 4

	// ConvertRefPrefix and TransferRefPrefix head the generated
	// transaction references, e.g. ZRH-K3N9PQ2X.
	ConvertRefPrefix  = "ZRH"
	TransferRefPrefix = "TXN"

	RefSuffixLen = 8
)

const (
	// CardPANPrefix opens every generated PAN.
	CardPANPrefix = "4532"
	CardExpiry    = "05 / 30"

	CardActivityLimit = 3
)
