package config

import (
	"path/filepath"
	"testing"
	"time"

	"hotel-booking/services/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "booking.events", cfg.BookingEventsQueue)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ORIGINS", "https://a.test, https://b.test,")
	t.Setenv("HOTEL_TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.DBMigrate)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Ho_Chi_Minh", loc.String())
}

func TestConnectDBSqlite(t *testing.T) {
	cfg := Config{DBDriver: "sqlite", DBDSN: filepath.Join(t.TempDir(), "hotel.db"), DBMigrate: true, DBSlowSQL: time.Second}

	db, err := ConnectDB(cfg, logger.NewDiscardLogger())

	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("bookings"))
	assert.True(t, db.Migrator().HasTable("booking_histories"))
}

func TestConnectDBUnknownDriver(t *testing.T) {
	_, err := ConnectDB(Config{DBDriver: "oracle"}, logger.NewDiscardLogger())

	assert.Error(t, err)
}
