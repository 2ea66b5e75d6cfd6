package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"

	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

const uptraceLogInstrumentation = "github.com/riskibarqy/cricket-tournament/internal/observability"

// quietRequestGroups are polled by probes and scrapers; their request logs stay local.
var quietRequestGroups = map[string]bool{
	RouteGroupHealth: true,
}

var quietRequestPaths = map[string]bool{
	"/metrics":      true,
	"/openapi.yaml": true,
}

// newUptraceLogMirror forwards log records to the OTel log pipeline. Domain events are
// emitted under a cricket.<entity>.<action> event name, request logs carry their route
// group, and registrant details are masked.
func newUptraceLogMirror(serviceVersion string) logging.MirrorFunc {
	otelLogger := otelglobal.Logger(
		uptraceLogInstrumentation,
		otellog.WithInstrumentationVersion(serviceVersion),
	)

	return func(ctx context.Context, level logging.Level, msg string, args ...any) {
		if shouldSkipUptraceLog(msg, args) {
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}

		eventName, attrs := mirrorRecord(msg, args)
		severity := toOTelSeverity(level)
		if !otelLogger.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: eventName}) {
			return
		}

		now := time.Now().UTC()
		record := otellog.Record{}
		record.SetTimestamp(now)
		record.SetObservedTimestamp(now)
		record.SetSeverity(severity)
		record.SetSeverityText(strings.ToUpper(level.String()))
		record.SetEventName(eventName)
		record.SetBody(otellog.StringValue(msg))
		record.AddAttributes(attrs...)

		otelLogger.Emit(ctx, record)
	}
}

func shouldSkipUptraceLog(msg string, args []any) bool {
	if msg != requestLogMessage {
		return false
	}
	path, _ := stringArg(args, "http_path")
	return quietRequestPaths[path] || quietRequestGroups[RouteGroup(path)] || strings.HasPrefix(path, "/docs")
}

// mirrorRecord derives the event name and attributes for one log line.
func mirrorRecord(msg string, args []any) (string, []otellog.KeyValue) {
	attrs := buildOTelLogAttributes(args)

	if event, ok := lookupDomainEvent(msg); ok {
		attrs = append(attrs,
			otellog.String("cricket.entity", event.entity),
			otellog.String("cricket.action", event.action),
		)
		return event.name(), attrs
	}
	if msg == requestLogMessage {
		path, _ := stringArg(args, "http_path")
		attrs = append(attrs, otellog.String("route_group", RouteGroup(path)))
	}
	return msg, attrs
}

func buildOTelLogAttributes(args []any) []otellog.KeyValue {
	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2+2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || strings.TrimSpace(key) == "" {
			key = fmt.Sprintf("arg_%d", i/2)
		}
		if i+1 >= len(args) {
			attrs = append(attrs, otellog.Empty(key))
			continue
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: toOTelLogValue(key, args[i+1])})
	}
	return attrs
}

func stringArg(args []any, key string) (string, bool) {
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok && k == key {
			value, ok := args[i+1].(string)
			return value, ok
		}
	}
	return "", false
}

func toOTelSeverity(level logging.Level) otellog.Severity {
	switch {
	case level <= logging.LevelDebug:
		return otellog.SeverityDebug
	case level == logging.LevelInfo:
		return otellog.SeverityInfo
	case level == logging.LevelWarn:
		return otellog.SeverityWarn
	case level == logging.LevelError:
		return otellog.SeverityError
	default:
		return otellog.SeverityFatal
	}
}

// toOTelLogValue converts the value kinds the service logs; anything else is printed.
func toOTelLogValue(key string, value any) otellog.Value {
	switch v := value.(type) {
	case nil:
		return otellog.Value{}
	case string:
		masked, _ := maskPII(key, v)
		return otellog.StringValue(masked)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int64:
		return otellog.Int64Value(v)
	case float64:
		return otellog.Float64Value(v)
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339))
	case time.Duration:
		return otellog.StringValue(v.String())
	case error:
		return otellog.StringValue(v.Error())
	case []string:
		items := make([]otellog.Value, 0, len(v))
		for _, item := range v {
			items = append(items, otellog.StringValue(item))
		}
		return otellog.SliceValue(items...)
	default:
		return otellog.StringValue(fmt.Sprint(v))
	}
}
