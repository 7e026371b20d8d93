package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays Config with the environment variables named in its env
// tags. Unset variables leave the field alone; malformed values (such as a
// REQUEST_TIMEOUT that is not a duration) panic.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
