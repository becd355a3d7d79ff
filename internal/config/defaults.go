package config

import "time"

// Defaults mirror the documented behaviour of the auth subsystem: 7-day
// sessions, 1-hour reset tokens, bcrypt cost 10, 10 logins and 5 password
// reset requests per client per 15 minutes.
const (
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenIssuer      = "go-lms"
	defaultTokenDuration    = 7 * 24 * time.Hour
	defaultInviteDuration   = 7 * 24 * time.Hour
	defaultResetTokenTTL    = time.Hour
	defaultPasswordHashCost = 10
	defaultLoginLimit       = 10
	defaultForgotLimit      = 5
	defaultRateLimitWindow  = 15 * time.Minute
	defaultPresignTTL       = 15 * time.Minute
	defaultObjectsRegion    = "us-east-1"
	defaultMailPort         = 587
	defaultSweepInterval    = 10 * time.Minute
	defaultServerURL        = "http://localhost:8080"
	defaultAppBaseURL       = "http://localhost:3000"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			InviteDuration:   defaultInviteDuration,
			ResetTokenTTL:    defaultResetTokenTTL,
			PasswordHashCost: defaultPasswordHashCost,
			ServerURL:        defaultServerURL,
			AppBaseURL:       defaultAppBaseURL,
		},
		Storage: Storage{
			Objects: Objects{
				Region:     defaultObjectsRegion,
				PresignTTL: defaultPresignTTL,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Mail: Mail{
			Port: defaultMailPort,
		},
		RateLimit: RateLimit{
			LoginLimit:  defaultLoginLimit,
			ForgotLimit: defaultForgotLimit,
			Window:      defaultRateLimitWindow,
		},
		Workers: Workers{
			ResetSweepInterval: defaultSweepInterval,
		},
	}
}
