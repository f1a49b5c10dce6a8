package workers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-light-wallet/internal/logger"
)

const (
	statusCommand       = "syncstatus"
	defaultPollInterval = time.Second
)

// StatusPoller dispatches syncstatus on a fixed interval and reports each
// outcome to the log and, when set, to out.
type StatusPoller struct {
	dispatcher Dispatcher
	interval   time.Duration
	out        io.Writer
	logger     *logger.Logger
}

// NewStatusPoller returns a poller. A nil out reports to the log only.
func NewStatusPoller(dispatcher Dispatcher, interval time.Duration, out io.Writer, log *logger.Logger) *StatusPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &StatusPoller{
		dispatcher: dispatcher,
		interval:   interval,
		out:        out,
		logger:     log.WithComponent("status_poller"),
	}
}

func (p *StatusPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Str("func", "StatusPoller.Run").Msg("status poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *StatusPoller) poll(ctx context.Context) {
	status := p.dispatcher.Exec(ctx, statusCommand, "")
	p.logger.Debug().Str("func", "StatusPoller.poll").Str("status", status).Msg("sync status")

	if p.out != nil {
		fmt.Fprintln(p.out, status)
	}
}
