package kvstore

import "time"

const (
	DriverNone     = "none"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

const (
	defaultPingTimeout   = 2 * time.Second
	defaultPostgresTable = "kv_slots"
)

// Config selects and configures a driver.
type Config struct {
	Driver      string
	PingTimeout time.Duration
	Redis       RedisConfig
	Postgres    PostgresConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type PostgresConfig struct {
	DSN   string
	Table string
}
