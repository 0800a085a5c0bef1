package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errInvalidDuration
	}

	if n, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	dur, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidDuration, err)
	}

	*d = Duration(dur)

	return nil
}

// ServerConfig represents the configuration for the networkhub web server.
type ServerConfig struct {
	ListenAddr      string   `json:"listen_addr" yaml:"listen_addr" validate:"required,hostname_port"`
	GrpcAddr        string   `json:"grpc_addr,omitempty" yaml:"grpc_addr" validate:"omitempty,hostname_port"`
	Debug           bool     `json:"debug" yaml:"debug"`
	MaxConnections  int      `json:"max_connections" yaml:"max_connections" validate:"gte=0"`
	ReadTimeout     Duration `json:"read_timeout" yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    Duration `json:"write_timeout" yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
	StreamInterval  Duration `json:"stream_interval" yaml:"stream_interval" validate:"gte=100000000"` // at least 100ms
	MetricsEnabled  bool     `json:"metrics_enabled" yaml:"metrics_enabled"`
	SiteName        string   `json:"site_name" yaml:"site_name" validate:"required,max=64"`
}

const (
	DefaultListenAddr = "0.0.0.0:5000"
	defaultTimeout    = 10 * time.Second
	defaultStream     = 2 * time.Second
	defaultSiteName   = "NetworkHub.ch"
)

// Default returns the configuration used when no file is given.
func Default() ServerConfig {
	return ServerConfig{
		ListenAddr:      DefaultListenAddr,
		ReadTimeout:     Duration(defaultTimeout),
		WriteTimeout:    Duration(defaultTimeout),
		ShutdownTimeout: Duration(defaultTimeout),
		StreamInterval:  Duration(defaultStream),
		MetricsEnabled:  true,
		SiteName:        defaultSiteName,
	}
}

var validate = validator.New()

// Validate implements config.Validator interface.
func (c *ServerConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on '%s'", errInvalidConfig, fe.Namespace(), fe.Tag())
		}

		return fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	return nil
}

// ApplyEnv overlays the HOST, PORT, DEBUG (or FLASK_DEBUG) and
// NETWORKHUB_GRPC_ADDR environment variables.
func (c *ServerConfig) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	host, port, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		host, port = "0.0.0.0", "5000"
	}

	if v := strings.TrimSpace(getenv("HOST")); v != "" {
		host = v
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port = v
	}

	c.ListenAddr = net.JoinHostPort(host, port)

	for _, key := range []string{"FLASK_DEBUG", "DEBUG"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Debug = b
			}
		}
	}

	if v := strings.TrimSpace(getenv("NETWORKHUB_GRPC_ADDR")); v != "" {
		c.GrpcAddr = v
	}
}
