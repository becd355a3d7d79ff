package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations are written as
// strings ("30s", "168h") and decoded through [Duration].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		InviteDuration   Duration `json:"invite_duration"`
		ResetTokenTTL    Duration `json:"reset_token_ttl"`
		PasswordHashCost int      `json:"password_hash_cost"`
		ServerURL        string   `json:"server_url"`
		AppBaseURL       string   `json:"base_url"`
		LogLevel         string   `json:"log_level"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Objects struct {
			Bucket        string   `json:"bucket"`
			Region        string   `json:"region"`
			Endpoint      string   `json:"endpoint"`
			AccessKey     string   `json:"access_key"`
			SecretKey     string   `json:"secret_key"`
			PublicBaseURL string   `json:"public_base_url"`
			PresignTTL    Duration `json:"presign_ttl"`
		} `json:"objects,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`

	Federation struct {
		GoogleClientID string `json:"google_client_id"`
	} `json:"federation,omitempty"`

	RateLimit struct {
		LoginLimit    int      `json:"login_limit"`
		ForgotLimit   int      `json:"forgot_limit"`
		Window        Duration `json:"window"`
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		ResetSweepInterval Duration `json:"reset_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			InviteDuration:   time.Duration(jsonCfg.App.InviteDuration),
			ResetTokenTTL:    time.Duration(jsonCfg.App.ResetTokenTTL),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			ServerURL:        jsonCfg.App.ServerURL,
			AppBaseURL:       jsonCfg.App.AppBaseURL,
			LogLevel:         jsonCfg.App.LogLevel,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Objects: Objects{
				Bucket:        jsonCfg.Storage.Objects.Bucket,
				Region:        jsonCfg.Storage.Objects.Region,
				Endpoint:      jsonCfg.Storage.Objects.Endpoint,
				AccessKey:     jsonCfg.Storage.Objects.AccessKey,
				SecretKey:     jsonCfg.Storage.Objects.SecretKey,
				PublicBaseURL: jsonCfg.Storage.Objects.PublicBaseURL,
				PresignTTL:    time.Duration(jsonCfg.Storage.Objects.PresignTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
		Federation: Federation{
			GoogleClientID: jsonCfg.Federation.GoogleClientID,
		},
		RateLimit: RateLimit{
			LoginLimit:    jsonCfg.RateLimit.LoginLimit,
			ForgotLimit:   jsonCfg.RateLimit.ForgotLimit,
			Window:        time.Duration(jsonCfg.RateLimit.Window),
			RedisAddress:  jsonCfg.RateLimit.RedisAddress,
			RedisPassword: jsonCfg.RateLimit.RedisPassword,
			RedisDB:       jsonCfg.RateLimit.RedisDB,
		},
		Workers: Workers{
			ResetSweepInterval: time.Duration(jsonCfg.Workers.ResetSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
