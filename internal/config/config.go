package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ysiverio/reservasBarberia/internal/domain"
	"github.com/ysiverio/reservasBarberia/pkg/types"
)

// Config is the whole process configuration, loaded once from config.toml
// and passed by reference into each component.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	Availability AvailabilityConfig `toml:"availability"`
	Calendar     CalendarConfig     `toml:"calendar"`
	SMTP         SMTPConfig         `toml:"smtp"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	PublicBaseURL   string `toml:"public_base_url"` // base for cancel/reschedule links
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	// JWTSecret firma HS256 de los tokens del panel de administración
	JWTSecret string `toml:"jwt_secret"`
}

// AvailabilityConfig horario y cupos del local
type AvailabilityConfig struct {
	WorkDays            []int    `toml:"work_days"` // 0=domingo ... 6=sábado
	Holidays            []string `toml:"holidays"`  // fechas YYYY-MM-DD
	WorkStart           string   `toml:"work_start"`
	WorkEnd             string   `toml:"work_end"`
	SlotDurationMinutes int      `toml:"slot_duration_minutes"`
	MaxPerDay           int      `toml:"max_reservations_per_day"`
	MaxPerCustomerDay   int      `toml:"max_reservations_per_customer_per_day"`
	Timezone            string   `toml:"timezone"`
}

type CalendarConfig struct {
	Enabled         bool   `toml:"enabled"`
	Required        bool   `toml:"required"` // mirror failure rolls the reservation back
	CalendarID      string `toml:"calendar_id"`
	CredentialsFile string `toml:"credentials_file"`
	Timeout         int    `toml:"timeout"`
}

type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	Subject  string `toml:"subject"`
	Timeout  int    `toml:"timeout"`
}

// Load parses the toml file, applies defaults and validates.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservas-barberia"
	}
	if len(c.Availability.WorkDays) == 0 {
		// martes a sábado
		c.Availability.WorkDays = []int{2, 3, 4, 5, 6}
	}
	if c.Availability.WorkStart == "" {
		c.Availability.WorkStart = domain.DefaultWorkStart
	}
	if c.Availability.WorkEnd == "" {
		c.Availability.WorkEnd = domain.DefaultWorkEnd
	}
	if c.Availability.SlotDurationMinutes == 0 {
		c.Availability.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Availability.MaxPerDay == 0 {
		c.Availability.MaxPerDay = domain.DefaultMaxReservationsPerDay
	}
	if c.Availability.MaxPerCustomerDay == 0 {
		c.Availability.MaxPerCustomerDay = domain.DefaultMaxPerCustomerPerDay
	}
	if c.Availability.Timezone == "" {
		c.Availability.Timezone = domain.DefaultTimezone
	}
	if c.Calendar.Timeout == 0 {
		c.Calendar.Timeout = 10
	}
	if c.SMTP.Timeout == 0 {
		c.SMTP.Timeout = 10
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.Subject == "" {
		c.SMTP.Subject = "Confirmación de reserva - Barbería"
	}
}

func (c *Config) validate() error {
	if c.Availability.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Availability.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: slot_duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	for _, d := range c.Availability.WorkDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("config: work_days entries must be 0..6, got %d", d)
		}
	}
	for _, h := range c.Availability.Holidays {
		if _, err := time.Parse(domain.DateFormat, h); err != nil {
			return fmt.Errorf("config: invalid holiday date %q", h)
		}
	}
	if _, err := types.NewTimeStringFromString(c.Availability.WorkStart); err != nil {
		return fmt.Errorf("config: invalid work_start: %w", err)
	}
	if _, err := types.NewTimeStringFromString(c.Availability.WorkEnd); err != nil {
		return fmt.Errorf("config: invalid work_end: %w", err)
	}
	if c.Calendar.Enabled && c.Calendar.CalendarID == "" {
		return fmt.Errorf("config: calendar.calendar_id is required when the mirror is enabled")
	}
	if c.Calendar.Required && !c.Calendar.Enabled {
		return fmt.Errorf("config: calendar.required needs calendar.enabled")
	}
	return nil
}

// AvailabilityRules converts the raw section into the domain rules used
// by the availability service. Fails if the timezone is unknown.
func (c *Config) AvailabilityRules() (*domain.AvailabilityRules, error) {
	loc, err := time.LoadLocation(c.Availability.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: load timezone %q: %w", c.Availability.Timezone, err)
	}

	workDays := make(map[time.Weekday]bool, len(c.Availability.WorkDays))
	for _, d := range c.Availability.WorkDays {
		workDays[time.Weekday(d)] = true
	}

	holidays := make(map[string]bool, len(c.Availability.Holidays))
	for _, h := range c.Availability.Holidays {
		holidays[h] = true
	}

	return &domain.AvailabilityRules{
		WorkDays:                      workDays,
		Holidays:                      holidays,
		WorkStart:                     types.TimeString(c.Availability.WorkStart),
		WorkEnd:                       types.TimeString(c.Availability.WorkEnd),
		SlotDurationMinutes:           c.Availability.SlotDurationMinutes,
		MaxReservationsPerDay:         c.Availability.MaxPerDay,
		MaxReservationsPerCustomerDay: c.Availability.MaxPerCustomerDay,
		Location:                      loc,
	}, nil
}
