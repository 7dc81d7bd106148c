package settings

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Demo   Demo   `mapstructure:"demo"`
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

// Demo is the configuration for the demo producer/consumer pair.
// PopTimeoutMs follows the queue convention: negative waits indefinitely.
type Demo struct {
	QueueCapacity  int `mapstructure:"queue_capacity" validate:"gte=1"`
	Messages       int `mapstructure:"messages" validate:"gte=0"`
	PopTimeoutMs   int `mapstructure:"pop_timeout_ms"`
	ConsumeDelayMs int `mapstructure:"consume_delay_ms" validate:"gte=0"`
}
