package constants

// FeeRateStr is the conversion fee rate (0.1%), kept as a string so the
// decimal package parses it exactly.
const FeeRateStr = "0.001"
