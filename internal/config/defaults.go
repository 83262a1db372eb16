package config

const (
	defaultDataDir          = "~/.local/share/subcast"
	defaultLogDir           = "~/.local/share/subcast/logs"
	defaultExportDir        = "~/subcast-exports"
	defaultToleranceMs      = 500
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Alignment: Alignment{
			ToleranceMs: defaultToleranceMs,
		},
		Export: Export{
			CSVByteOrderMark: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
