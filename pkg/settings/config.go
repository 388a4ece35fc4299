package settings

type Config struct {
	Server     Server             `mapstructure:"server"`
	Logger     Logger             `mapstructure:"logger"`
	Hashids    Hashids            `mapstructure:"hashids"`
	Namespaces map[string]Hashids `mapstructure:"namespaces"`
}

// Server is the configuration for the HTTP server
type Server struct {
	Mode            string `mapstructure:"mode"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // Seconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // Seconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // Seconds
	BatchLimit      int    `mapstructure:"batch_limit"`      // Concurrent decodes per batch request
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Hashids is the configuration of one hashids codec.
// An empty Alphabet selects the package default. A nil Separators selects
// the default separators; a non-nil empty one means no separators.
type Hashids struct {
	Salt       string  `mapstructure:"salt"`
	MinLength  int     `mapstructure:"min_length"`
	Alphabet   string  `mapstructure:"alphabet"`
	Separators *string `mapstructure:"separators"`
}
