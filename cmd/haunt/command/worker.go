package command

import (
	"fmt"

	"github.com/pixil98/go-service"
	"github.com/veilbrook/go-haunt/internal/engine"
	"github.com/veilbrook/go-haunt/internal/listener"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Embedded NATS server carries session notifications
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	world, err := cfg.Storage.BuildWorld(cfg.Game.StartRoom)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	sessions, err := cfg.Storage.BuildSessionStore()
	if err != nil {
		return nil, fmt.Errorf("building session store: %w", err)
	}

	eng := engine.New(world, sessions, natsServer)
	cm := listener.NewConnectionManager(eng, natsServer)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	return service.WorkerList{
		"nats":      natsServer,
		"listeners": &listeners,
	}, nil
}
