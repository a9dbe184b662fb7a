// Package runner starts launcher entries as detached processes.
// Runners register themselves in init() functions and are selected by name
// from the settings file.
package runner

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Runner starts a command without waiting for it. It satisfies
// core.ProcessLauncher.
type Runner interface {
	// Name returns the registered name (e.g., "shell", "exec").
	Name() string

	// SpawnDetached starts command in its own session and returns once the
	// process has started. The child's lifetime is not tracked by the caller.
	SpawnDetached(command string) error
}

// Options configures a runner instance.
type Options struct {
	// Shell and ShellArgs build the shell runner's argv:
	// <Shell> <ShellArgs...> <command>.
	Shell     string
	ShellArgs []string

	// Output receives the child's stdout and stderr. Nil discards them.
	Output io.Writer

	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Info contains metadata about a registered runner.
type Info struct {
	Name        string
	Description string
}

// Factory creates a runner from options.
type Factory func(Options) Runner

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a runner factory to the registry.
// Panics if a runner with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("runner: %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns all registered runners, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a runner by name.
// Returns an error if the name is not registered.
func Create(name string, opts Options) (Runner, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("runner: unknown runner %q", name)
	}

	return f(opts), nil
}

// Exists checks if a runner with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
