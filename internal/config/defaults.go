package config

const (
	defaultOutRoot          = "~/.local/share/subweave/out"
	defaultLogDir           = "~/.local/share/subweave/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultMaxGapMS         = 1500
	defaultMaxSentenceMS    = 12000
	defaultTranslitCommand  = "sanscript"
	defaultTargetScript     = "devanagari"
	defaultMaxResidualRatio = 0.05
	defaultTranslitWorkers  = 4
)

var (
	defaultSchemeOrder = []string{"itrans", "hk", "iast"}
	defaultFormats     = []string{"text", "srt", "vtt", "json"}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutRoot: defaultOutRoot,
			LogDir:  defaultLogDir,
		},
		Merge: Merge{
			Enabled:       true,
			MaxGapMS:      defaultMaxGapMS,
			MaxSentenceMS: defaultMaxSentenceMS,
		},
		Transliteration: Transliteration{
			Enabled:          false,
			SchemeOrder:      append([]string(nil), defaultSchemeOrder...),
			Command:          defaultTranslitCommand,
			TargetScript:     defaultTargetScript,
			MaxResidualRatio: defaultMaxResidualRatio,
			Workers:          defaultTranslitWorkers,
		},
		Output: Output{
			Formats: append([]string(nil), defaultFormats...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
