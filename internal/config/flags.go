package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-content-dir content fallback directory
//	-uploads-dir uploads directory
//	-session-ttl session token lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-catalog-fallback catalog storage-unavailability policy ("none", "sample")
//	-mail-provider-url outbound mail provider base URL
//	-mail-api-key outbound mail provider API key
//	-mail-from sender address
//	-session-sweep-interval expired-session sweeper interval (0 disables)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("heavymart-backend", flag.ContinueOnError)

	var serverAddress string
	var databaseDSN string
	var contentDir string
	var uploadsDir string
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var catalogFallback string
	var mailProviderURL string
	var mailAPIKey string
	var mailFrom string
	var sweepInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&contentDir, "content-dir", "", "Content fallback directory")
	fs.StringVar(&uploadsDir, "uploads-dir", "", "Uploads directory")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session token lifetime (e.g. 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.StringVar(&catalogFallback, "catalog-fallback", "", "Catalog fallback policy (none, sample)")
	fs.StringVar(&mailProviderURL, "mail-provider-url", "", "Mail provider base URL")
	fs.StringVar(&mailAPIKey, "mail-api-key", "", "Mail provider API key")
	fs.StringVar(&mailFrom, "mail-from", "", "Sender address")
	fs.DurationVar(&sweepInterval, "session-sweep-interval", 0, "Expired-session sweeper interval (0 disables)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			SessionTTL: sessionTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ContentDir: contentDir,
				UploadsDir: uploadsDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Catalog: Catalog{
			Fallback: catalogFallback,
		},
		Mail: Mail{
			ProviderURL: mailProviderURL,
			APIKey:      mailAPIKey,
			From:        mailFrom,
		},
		Workers: Workers{
			SessionSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
