package notif

import (
	"fmt"
	"log"
	"sync"
	"time"

	"notifeed/internal/common"
)

// ActionHandler executes the side effect bound to one action type. A
// real deployment wires these to the follow graph, the like counter,
// the reply composer and friends; the defaults log and return nil.
type ActionHandler func(record common.NotificationRecord, action common.Action) error

// Dispatcher resolves a performed action against the record's declared
// action list and runs the bound handler. Handler failures and unknown
// actions are logged, never propagated; only a missing record is an
// error to the caller.
type Dispatcher struct {
	service  *Service
	router   common.Router
	navDelay time.Duration

	mu       sync.RWMutex
	handlers map[common.ActionType]ActionHandler
}

func NewDispatcher(service *Service, router common.Router, navDelay time.Duration) *Dispatcher {
	if navDelay <= 0 {
		navDelay = 500 * time.Millisecond
	}

	d := &Dispatcher{
		service:  service,
		router:   router,
		navDelay: navDelay,
		handlers: make(map[common.ActionType]ActionHandler),
	}

	for _, t := range []common.ActionType{
		common.ActionLike, common.ActionFollow, common.ActionReply,
		common.ActionShare, common.ActionView, common.ActionAccept,
		common.ActionDecline,
	} {
		actionType := t
		d.handlers[actionType] = func(record common.NotificationRecord, action common.Action) error {
			log.Printf("Action %s performed on notification %s (%s)",
				actionType, record.ID, action.Label)
			return nil
		}
	}

	return d
}

// RegisterHandler replaces the hook for one action type. Safe to call
// while actions are being performed.
func (d *Dispatcher) RegisterHandler(t common.ActionType, handler ActionHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = handler
}

// PerformAction runs the declared action. Regardless of which action
// was invoked the record is marked read and dismissed first, and a
// related URL schedules a fire-and-forget navigation hand-off to the
// router after the configured delay.
func (d *Dispatcher) PerformAction(notificationID, actionID string) error {
	record, err := d.service.Get(notificationID)
	if err != nil {
		return err
	}

	if err := d.service.MarkAsRead(notificationID); err != nil {
		log.Printf("PerformAction mark-as-read failed: %v", err)
	}
	if err := d.service.Dismiss(notificationID); err != nil {
		log.Printf("PerformAction dismiss failed: %v", err)
	}

	if record.Metadata != nil && record.Metadata.RelatedURL != "" && d.router != nil {
		url := record.Metadata.RelatedURL
		time.AfterFunc(d.navDelay, func() {
			d.router.Navigate(url)
		})
	}

	action, ok := findAction(record, actionID)
	if !ok {
		log.Printf("PerformAction: %v: %q on notification %s",
			common.ErrUnknownAction, actionID, notificationID)
		return nil
	}

	d.mu.RLock()
	handler, ok := d.handlers[action.Type]
	d.mu.RUnlock()
	if !ok {
		log.Printf("PerformAction: no handler for action type %q", action.Type)
		return nil
	}

	if err := runHandler(handler, record, action); err != nil {
		log.Printf("Action handler %s failed: %v", action.Type, err)
	}

	return nil
}

func findAction(record common.NotificationRecord, actionID string) (common.Action, bool) {
	for _, action := range record.Actions {
		if action.ID == actionID {
			return action, true
		}
	}
	return common.Action{}, false
}

// runHandler contains handler panics so a broken hook cannot corrupt
// store state or take the command boundary down.
func runHandler(handler ActionHandler, record common.NotificationRecord, action common.Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action handler panicked: %v", r)
		}
	}()
	return handler(record, action)
}

// LogRouter is the default navigation collaborator; it records the
// hand-off instead of driving a real presentation router.
type LogRouter struct{}

func (LogRouter) Navigate(url string) {
	log.Printf("Navigating to %s", url)
}
