package otel

import (
	"context"
	"net/http"
	"os"

	"gitlab.com/pala-software/teardown/pkg/teardown"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var name = "gitlab.com/pala-software/teardown/pkg/otel"
var logger = otelslog.NewLogger(name)

type OTel struct {
	TracesEnabled  bool
	MetricsEnabled bool
	LogsEnabled    bool
}

// Construct OTel feature and read configuration from environment
// variables.
func OTelFromEnv() *OTel {
	feature := OTel{}
	feature.TracesEnabled = os.Getenv("TEARDOWN_OTEL_TRACES_ENABLE") == "1"
	feature.MetricsEnabled = os.Getenv("TEARDOWN_OTEL_METRICS_ENABLE") == "1"
	feature.LogsEnabled = os.Getenv("TEARDOWN_OTEL_LOGS_ENABLE") == "1"
	return &feature
}

func (feature OTel) Middleware() func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware("server")
}

func (feature *OTel) Provider() any {
	return func() (self *OTel) {
		self = feature
		return
	}
}

// Invoker sets up the OpenTelemetry SDK and registers its shutdown with
// the teardown registry. Anything registered afterwards is released
// before the SDK goes away, so its telemetry still has somewhere to go.
func (feature *OTel) Invoker() any {
	return func(registry *teardown.Registry) (err error) {
		shutdown, err := feature.setup(context.Background())
		if err != nil {
			return
		}

		err = registry.Register(teardown.ReleaseFunc(func() error {
			logger.Info("Shutdown")
			return shutdown(context.Background())
		}))
		return
	}
}
