package web

import "context"

type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// logger matches the application's component-tagged logger.
type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}
