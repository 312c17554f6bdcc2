package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jaribu/attendance-api/internal/domain"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Course   *CourseConfig   `mapstructure:"course"`
	Mail     *MailConfig     `mapstructure:"mail"`

	mu sync.RWMutex
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// CourseConfig holds the schedule and classroom configuration. Quotas and
// session lists are hot-reloadable; everything else requires a restart.
type CourseConfig struct {
	LaptopClassroom   string         `mapstructure:"laptop_classroom"`
	NoLaptopClassroom string         `mapstructure:"no_laptop_classroom"`
	ClassroomQuotas   map[string]int `mapstructure:"classroom_quotas"`
	SaturdaySessions  []string       `mapstructure:"saturday_sessions"`
	SundaySessions    []string       `mapstructure:"sunday_sessions"`
	QRCodeDir         string         `mapstructure:"qr_code_dir"`
}

type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender"`
}

// Load reads the yaml config at path, applies ATTENDANCE_* environment
// overrides, and watches the file so classroom quotas and session lists can
// be adjusted without a restart.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("attendance")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		fresh := &AppConfig{}
		if err := v.Unmarshal(fresh); err != nil || fresh.Course == nil {
			zap.L().Warn("ignoring config reload", zap.String("file", e.Name), zap.Error(err))
			return
		}

		conf.mu.Lock()
		conf.Course = fresh.Course
		conf.mu.Unlock()

		zap.L().Info("course configuration reloaded", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}

func (c *AppConfig) validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil || c.Course == nil {
		return fmt.Errorf("config is missing a required section (api, gin, postgres, course)")
	}
	if c.Course.LaptopClassroom == "" || c.Course.NoLaptopClassroom == "" {
		return fmt.Errorf("course config must name both classrooms")
	}

	return nil
}

// ClassroomPlan returns the current classroom configuration as a domain value.
// Safe to call concurrently with config reloads.
func (c *AppConfig) ClassroomPlan() domain.ClassroomPlan {
	c.mu.RLock()
	course := c.Course
	c.mu.RUnlock()

	quotas := make(map[string]int, len(course.ClassroomQuotas))
	for room, quota := range course.ClassroomQuotas {
		quotas[room] = quota
	}

	return domain.ClassroomPlan{
		LaptopRoom:   course.LaptopClassroom,
		NoLaptopRoom: course.NoLaptopClassroom,
		Quotas:       quotas,
	}
}

// SessionSlots returns the configured time-slot list for a day.
func (c *AppConfig) SessionSlots(day string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if day == domain.DaySaturday {
		return append([]string(nil), c.Course.SaturdaySessions...)
	}
	return append([]string(nil), c.Course.SundaySessions...)
}
