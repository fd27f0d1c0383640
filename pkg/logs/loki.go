package logs

import (
	"log/slog"

	"github.com/grafana/loki-client-go/loki"
	promconfig "github.com/prometheus/common/config"
	slogloki "github.com/samber/slog-loki/v3"

	"github.com/mentorly/mentorly_backend/config"
)

// newLokiHandler builds a handler that batches log records to Loki's push API.
func newLokiHandler(cfg *config.Config, level slog.Level) (slog.Handler, error) {
	lokiCfg, err := loki.NewDefaultConfig(cfg.Logging.Output.Loki.Endpoint + "/loki/api/v1/push")
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Output.Loki.Username != "" {
		lokiCfg.Client.BasicAuth = &promconfig.BasicAuth{
			Username: cfg.Logging.Output.Loki.Username,
			Password: promconfig.Secret(cfg.Logging.Output.Loki.Password),
		}
	}

	client, err := loki.New(lokiCfg)
	if err != nil {
		return nil, err
	}

	return slogloki.Option{Level: level, Client: client}.NewLokiHandler(), nil
}
