package config

const (
	KeyToken      = "joplin_token"
	KeyPort       = "joplin_port"
	KeyAutoLaunch = "joplin_auto_launch"
	KeyLogLevel   = "log_level"
)
