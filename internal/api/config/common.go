package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	SlackDB  DBConfig       `mapstructure:"slack_database"`
	GithubDB DBConfig       `mapstructure:"github_database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Slack    SlackConfig    `mapstructure:"slack"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// AuthConfig 会话令牌校验配置，令牌由外部身份服务签发
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// SlackConfig Slack Web API 配置
type SlackConfig struct {
	BaseURL        string   `mapstructure:"base_url"`
	UserToken      string   `mapstructure:"user_token"`
	TeamID         string   `mapstructure:"team_id"`
	TriviaKeywords []string `mapstructure:"trivia_keywords"`
}
