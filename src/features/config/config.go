package config

// Config holds the application configuration.
type Config struct {
	PublicPath   string   `yaml:"publicPath" validate:"required"`
	UploadFolder string   `yaml:"uploadFolder" validate:"required"`
	CatalogPath  string   `yaml:"catalogPath" validate:"required"`
	AccessCode   string   `yaml:"accessCode" validate:"required"`
	Server       Server   `yaml:"server"`
	Logger       Logger   `yaml:"logger"`
	Database     Database `yaml:"database"`
	Telegram     Telegram `yaml:"telegram"`
	Watcher      Watcher  `yaml:"watcher"`
}

// Server holds the configuration for the Fiber server.
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Database holds the configuration for the activity log database.
type Database struct {
	Path string `yaml:"path" validate:"required"`
}

// Telegram holds the configuration for the optional notifier bot.
type Telegram struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
	ChatID  int64  `yaml:"chat_id"`
}

// Watcher holds the configuration for the storage drift watcher.
type Watcher struct {
	Enabled bool `yaml:"enabled"`
}
