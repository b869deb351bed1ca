package di

import (
	"log"
	"time"

	"notifeed/internal/common"
	"notifeed/internal/config"
	"notifeed/internal/memstore"
	"notifeed/internal/notif"
)

// Application bundles the wired engine for the service entrypoint.
type Application struct {
	Config     *config.Config
	Store      common.NotificationStore
	Prefs      *notif.PreferenceStore
	Pipeline   *notif.Pipeline
	Service    *notif.Service
	Sweeper    *notif.Sweeper
	Simulator  *notif.Simulator
	Dispatcher *notif.Dispatcher
	Handler    *notif.HTTPHandler
}

func NewApplication(
	cfg *config.Config,
	store common.NotificationStore,
	prefs *notif.PreferenceStore,
	pipeline *notif.Pipeline,
	service *notif.Service,
	sweeper *notif.Sweeper,
	simulator *notif.Simulator,
	dispatcher *notif.Dispatcher,
	handler *notif.HTTPHandler,
) *Application {
	service.AttachSweeper(sweeper)

	return &Application{
		Config:     cfg,
		Store:      store,
		Prefs:      prefs,
		Pipeline:   pipeline,
		Service:    service,
		Sweeper:    sweeper,
		Simulator:  simulator,
		Dispatcher: dispatcher,
		Handler:    handler,
	}
}

// Start brings the timers up according to preferences and config.
func (a *Application) Start() {
	a.Sweeper.Apply(a.Prefs.Get().AutoDismiss)
	a.Simulator.SetEnabled(a.Config.Notification.RealTimeEnabled)
}

// Shutdown tears both timers down and drains the ingest pipeline.
func (a *Application) Shutdown() {
	a.Simulator.SetEnabled(false)
	a.Sweeper.Stop()
	a.Service.Shutdown()
	log.Println("Application shutdown complete")
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideStore() common.NotificationStore {
	return memstore.New()
}

func ProvidePipeline(store common.NotificationStore, cfg *config.Config) *notif.Pipeline {
	return notif.NewPipeline(store, cfg.Notification.Workers, cfg.Notification.ChannelBufferSize)
}

func ProvideSweeper(store common.NotificationStore, prefs *notif.PreferenceStore, cfg *config.Config) *notif.Sweeper {
	return notif.NewSweeper(store, prefs, time.Duration(cfg.Notification.SweepInterval)*time.Second)
}

func ProvideSimulator(service *notif.Service, cfg *config.Config) *notif.Simulator {
	return notif.NewSimulator(service, time.Duration(cfg.Notification.SimulatorInterval)*time.Second)
}

func ProvideRouter() common.Router {
	return notif.LogRouter{}
}

func ProvideDispatcher(service *notif.Service, router common.Router, cfg *config.Config) *notif.Dispatcher {
	return notif.NewDispatcher(service, router,
		time.Duration(cfg.Notification.ActionNavDelay)*time.Millisecond)
}
