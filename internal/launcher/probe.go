package launcher

import (
	"context"
	"os/exec"
	"time"

	"github.com/roivaz/joplin-mcp/internal/logging"
)

const (
	defaultProcessPattern = "joplin"
	defaultProbeTimeout   = 5 * time.Second
)

// Probe answers whether the Joplin desktop process is present in the host
// process table.
type Probe struct {
	pattern string
	timeout time.Duration
	run     func(ctx context.Context, name string, args ...string) error
	log     logging.Logger
}

func NewProbe(log logging.Logger) *Probe {
	return &Probe{
		pattern: defaultProcessPattern,
		timeout: defaultProbeTimeout,
		run:     runCommand,
		log:     log.WithName("probe"),
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// IsRunning reports whether a process matching the Joplin command line
// exists. Any inspection failure counts as not running.
func (p *Probe) IsRunning(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.run(ctx, "pgrep", "-f", p.pattern); err != nil {
		p.log.Debug("process probe negative", "error", err)
		return false
	}
	return true
}
