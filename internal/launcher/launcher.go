package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/roivaz/joplin-mcp/internal/logging"
)

const flatpakRef = "net.cozic.joplin_desktop"

// defaultCandidates lists the common Joplin install locations on Linux, in
// resolution order.
func defaultCandidates(home string) []string {
	return []string{
		filepath.Join(home, ".joplin", "Joplin.AppImage"),
		"joplin-desktop",
		"joplin",
		"/usr/bin/joplin-desktop",
		"/usr/bin/joplin",
		"/snap/bin/joplin-desktop",
		"/opt/Joplin/joplin",
	}
}

// Launcher starts the Joplin desktop application detached from this
// process so it survives the adapter exiting.
type Launcher struct {
	candidates []string
	lookPath   func(string) (string, error)
	fileExists func(string) bool
	start      func(path string, args []string, env []string) error
	environ    func() []string
	log        logging.Logger
}

func NewLauncher(log logging.Logger) *Launcher {
	home, _ := os.UserHomeDir()
	return &Launcher{
		candidates: defaultCandidates(home),
		lookPath:   exec.LookPath,
		fileExists: fileExists,
		start:      startDetached,
		environ:    os.Environ,
		log:        log.WithName("launcher"),
	}
}

// Launch spawns the first candidate that resolves to an executable, falling
// back to the flatpak distribution. Returns true iff a launch command was
// issued; whether the application comes up is not part of the contract.
func (l *Launcher) Launch() bool {
	env := l.buildEnv()

	for _, candidate := range l.candidates {
		path, ok := l.resolve(candidate)
		if !ok {
			continue
		}
		if err := l.start(path, nil, env); err != nil {
			l.log.Debug("launch candidate failed", "path", path, "error", err)
			continue
		}
		l.log.Info("issued launch command", "path", path)
		return true
	}

	if _, err := l.lookPath("flatpak"); err == nil {
		if err := l.start("flatpak", []string{"run", flatpakRef}, env); err == nil {
			l.log.Info("issued launch command", "path", "flatpak run "+flatpakRef)
			return true
		}
	}

	l.log.Info("no launch candidate resolved")
	return false
}

func (l *Launcher) resolve(candidate string) (string, bool) {
	if path, err := l.lookPath(candidate); err == nil {
		return path, true
	}
	if l.fileExists(candidate) {
		return candidate, true
	}
	return "", false
}

// buildEnv copies the current environment, injecting a default X11 display
// when none is set and the Wayland display when its runtime socket exists
// but the variable is unset.
func (l *Launcher) buildEnv() []string {
	env := l.environ()
	if !envHas(env, "DISPLAY") {
		env = append(env, "DISPLAY=:0")
	}
	if !envHas(env, "WAYLAND_DISPLAY") && l.fileExists(waylandSocketPath()) {
		env = append(env, "WAYLAND_DISPLAY=wayland-0")
	}
	return env
}

func waylandSocketPath() string {
	return fmt.Sprintf("/run/user/%d/wayland-0", os.Getuid())
}

func envHas(env []string, key string) bool {
	prefix := key + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// startDetached spawns the executable in its own session with stdio routed
// to /dev/null, then releases the process handle.
func startDetached(path string, args []string, env []string) error {
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Desktop bundles the probe and launcher behind the surface the API client
// retries through.
type Desktop struct {
	Probe    *Probe
	Launcher *Launcher
}

func New(log logging.Logger) *Desktop {
	return &Desktop{
		Probe:    NewProbe(log),
		Launcher: NewLauncher(log),
	}
}

func (d *Desktop) IsRunning(ctx context.Context) bool { return d.Probe.IsRunning(ctx) }
func (d *Desktop) Launch() bool                       { return d.Launcher.Launch() }
