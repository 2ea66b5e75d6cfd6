package app

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/riskibarqy/cricket-tournament/internal/config"
)

// DSN returns the postgres connection string for cfg. It tags the connection with the
// service name as application_name and applies the prepared-binary flag when configured.
// Parameters already present in DB_URL win.
func DSN(cfg config.Config) string {
	params := make(map[string]string, 2)
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		params["application_name"] = name
	}
	if cfg.DBDisablePreparedBinary {
		params["disable_prepared_binary_result"] = "yes"
	}
	return withDSNParams(cfg.DBURL, params)
}

// withDSNParams adds the missing params to either a postgres:// URL or a keyword/value DSN.
func withDSNParams(raw string, params map[string]string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(params) == 0 {
		return raw
	}
	keys := slices.Sorted(maps.Keys(params))

	if parsed, err := url.Parse(raw); err == nil && isPostgresScheme(parsed.Scheme) {
		query := parsed.Query()
		for _, key := range keys {
			if query.Get(key) == "" {
				query.Set(key, params[key])
			}
		}
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	present := keywordParams(raw)
	var b strings.Builder
	b.WriteString(raw)
	for _, key := range keys {
		if _, ok := present[key]; ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%s", key, quoteKeywordValue(params[key]))
	}
	return b.String()
}

// databaseName extracts the database for the db.name span attribute.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && isPostgresScheme(parsed.Scheme) {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	return keywordParams(dsn)["dbname"]
}

func isPostgresScheme(scheme string) bool {
	return scheme == "postgres" || scheme == "postgresql"
}

func keywordParams(dsn string) map[string]string {
	out := make(map[string]string)
	for _, token := range strings.Fields(dsn) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		out[key] = strings.Trim(value, `"'`)
	}
	return out
}

func quoteKeywordValue(value string) string {
	if !strings.ContainsAny(value, " '\\") {
		return value
	}
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return "'" + value + "'"
}
