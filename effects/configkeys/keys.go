package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectLogPrefix      = ConfigEffectPrefix + delimiter + "log"
	ConfigEffectLogLevel       = ConfigEffectLogPrefix + delimiter + "level"
	ConfigEffectLogEncoding    = ConfigEffectLogPrefix + delimiter + "encoding"
	ConfigEffectLogDiagnostics = ConfigEffectLogPrefix + delimiter + "diagnostics"

	ConfigEffectTracePrefix     = ConfigEffectPrefix + delimiter + "trace"
	ConfigEffectTraceEnabled    = ConfigEffectTracePrefix + delimiter + "enabled"
	ConfigEffectTraceCapacity   = ConfigEffectTracePrefix + delimiter + "capacity"
	ConfigEffectTraceSampleRate = ConfigEffectTracePrefix + delimiter + "sample_rate"
)
