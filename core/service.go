package core

import (
	"context"
	"fmt"

	"github.com/status-im/crypto-insight/logging"
)

// Interface is implemented by every long-lived component owned by the registry
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry starts services in registration order and stops them in reverse
type Registry struct {
	services []Interface
	running  []Interface
}

// NewRegistry creates a new core registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

// Register adds a service to the registry
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// Len returns the number of registered services
func (sr *Registry) Len() int {
	return len(sr.services)
}

// StartAll starts all registered services. If one fails, the services
// already started are stopped before the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for _, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			sr.StopAll()
			return fmt.Errorf("start %T: %w", service, err)
		}
		sr.running = append(sr.running, service)
	}
	return nil
}

// StopAll stops the running services in reverse order. Calling it twice is a no-op.
func (sr *Registry) StopAll() {
	log := logging.Component(nil, "Core")
	for i := len(sr.running) - 1; i >= 0; i-- {
		log.Debugf("Stopping %T", sr.running[i])
		sr.running[i].Stop()
	}
	sr.running = nil
}
