package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled"          toml:"enabled"`
	UseConsoleWriter bool `mapstructure:"useconsolewriter" toml:"useconsolewriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Path    string `mapstructure:"path"    toml:"path"`

	AccessLog        string `mapstructure:"access"           toml:"access"`
	AccessMaxSize    int    `mapstructure:"accessmaxsize"    toml:"accessMaxSize"`
	AccessMaxBackups int    `mapstructure:"accessmaxbackups" toml:"accessMaxBackups"`
	AccessMaxAge     int    `mapstructure:"accessmaxage"     toml:"accessMaxAge"`

	ErrorLog        string `mapstructure:"error"           toml:"error"`
	ErrorMaxSize    int    `mapstructure:"errormaxsize"    toml:"errorMaxSize"`
	ErrorMaxBackups int    `mapstructure:"errormaxbackups" toml:"errorMaxBackups"`
	ErrorMaxAge     int    `mapstructure:"errormaxage"     toml:"errorMaxAge"`

	InfoLog        string `mapstructure:"info"           toml:"info"`
	InfoMaxSize    int    `mapstructure:"infomaxsize"    toml:"infoMaxSize"`
	InfoMaxBackups int    `mapstructure:"infomaxbackups" toml:"infoMaxBackups"`
	InfoMaxAge     int    `mapstructure:"infomaxage"     toml:"infoMaxAge"`

	TraceLog        string `mapstructure:"trace"           toml:"trace"`
	TraceMaxSize    int    `mapstructure:"tracemaxsize"    toml:"traceMaxSize"`
	TraceMaxBackups int    `mapstructure:"tracemaxbackups" toml:"traceMaxBackups"`
	TraceMaxAge     int    `mapstructure:"tracemaxage"     toml:"traceMaxAge"`

	WarnLog        string `mapstructure:"warn"           toml:"warn"`
	WarnMaxSize    int    `mapstructure:"warnmaxsize"    toml:"warnMaxSize"`
	WarnMaxBackups int    `mapstructure:"warnmaxbackups" toml:"warnMaxBackups"`
	WarnMaxAge     int    `mapstructure:"warnmaxage"     toml:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"loglevel" toml:"loglevel"` // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes the http access log to stdout as well.
	// Does not overrule Console.Enabled.
	EnableAccessLogToConsole bool `mapstructure:"enableaccesslogtoconsole" toml:"enableaccesslogtoconsole"`
	ReportCaller             bool `mapstructure:"reportcaller"             toml:"reportcaller"`
	DisableCheckAlive        bool `mapstructure:"disablecheckalive"        toml:"disablecheckalive"` // do not log /checkalive calls

	AppName     string `mapstructure:"appname"     toml:"appname"`
	ServiceName string `mapstructure:"servicename" toml:"servicename"`

	// Console used mainly for docker and dev.
	Console Console `mapstructure:"console" toml:"console"`

	// File based rolling logs.
	File LogFile `mapstructure:"file" toml:"file"`
}
