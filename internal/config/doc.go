// Package config manages configuration for the loom CLI.
//
// Configuration is loaded from LOOM_* environment variables with sensible
// defaults, then validated before anything connects anywhere:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - BackendConfig: which backend seeds are written through (http or
//     surrealdb)
//   - HTTPConfig: base URL, bearer token, and timeout for the HTTP backend
//   - DatabaseConfig: SurrealDB connection settings for the surrealdb
//     backend
//   - PlanConfig: path of the YAML seed plan
//   - MetricsConfig: optional Prometheus endpoint address
//
// # Key Environment Variables
//
//	LOOM_BACKEND         - "http" or "surrealdb" (default: http)
//	LOOM_API_BASE_URL    - API root for the http backend
//	LOOM_API_TOKEN       - optional bearer token
//	LOOM_API_TIMEOUT     - per-request timeout (default: 15s)
//	LOOM_DB_HOST         - SurrealDB host (default: localhost)
//	LOOM_DB_PORT         - SurrealDB port (default: 8000)
//	LOOM_DB_NAMESPACE    - SurrealDB namespace (default: loom)
//	LOOM_DB_DATABASE     - SurrealDB database (default: seed)
//	LOOM_DB_USER         - SurrealDB user (default: root)
//	LOOM_DB_PASSWORD     - SurrealDB password (default: root)
//	LOOM_PLAN            - seed plan path (default: ./seed.yaml)
//	LOOM_METRICS_ADDR    - e.g. ":9090"; empty disables the /metrics server
package config
