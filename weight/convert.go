package weight

// TropicalToLog reinterprets a tropical weight as a log weight. Both use
// negative-log values, so the conversion is exact and round-trips.
func TropicalToLog(w Tropical) Log { return Log(w) }

// LogToTropical reinterprets a log weight as a tropical weight.
func LogToTropical(w Log) Tropical { return Tropical(w) }

