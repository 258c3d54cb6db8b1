package mset

import (
	"fmt"
	"runtime"

	"github.com/consensys/mset/logger"
	"github.com/rs/zerolog"
)

// Option defines option for altering the behavior of batch accumulation
// ([Hash.Apply] and [Sum]). See the descriptions of functions returning
// instances of this type for implemented options.
type Option func(*Config) error

// Config is the configuration for batch accumulation with the options applied.
type Config struct {
	Logger  zerolog.Logger // defaults to mset.Logger
	NbTasks int            // defaults to runtime.NumCPU()
}

// WithLogger is a batch option that specifies zerolog.Logger as a destination
// for the logs printed during accumulation. By default, uses mset/logger.
// zerolog.Nop() will disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// WithNbTasks sets the number of parallel workers to use for batch
// accumulation. If not set, then the number of workers is set to
// runtime.NumCPU().
func WithNbTasks(nbTasks int) Option {
	return func(opt *Config) error {
		if nbTasks <= 0 {
			return fmt.Errorf("invalid number of threads: %d", nbTasks)
		}
		if nbTasks > 512 {
			// limit the number of tasks to 512. This is to avoid possible
			// saturation of the runtime scheduler.
			nbTasks = 512
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

// NewConfig returns a default Config with given options opts applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{Logger: logger.Logger(), NbTasks: runtime.NumCPU()}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
