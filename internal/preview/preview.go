package preview

// Logger matches the application's component-tagged logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Options configure Run.
type Options struct {
	// Device is the framebuffer device, /dev/fb0 when empty.
	Device  string
	Caption string
	Logger  Logger
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

func (o Options) withDefaults() Options {
	if o.Device == "" {
		o.Device = "/dev/fb0"
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
	return o
}
