package notif

import (
	"context"
	"log"
	"sync"

	"notifeed/internal/common"
)

// Pipeline is the single entry point that turns a finished record into
// stored state. Deliver inserts synchronously; Submit enqueues onto a
// bounded channel drained by a worker pool, and drops with a log line
// when the channel is full. Observers see every delivered record.
type Pipeline struct {
	store     common.NotificationStore
	observers map[string]common.Observer
	events    chan common.NotificationRecord
	workers   int
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.RWMutex
	wg        sync.WaitGroup
}

func NewPipeline(store common.NotificationStore, workers, bufferSize int) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pipeline{
		store:     store,
		observers: make(map[string]common.Observer),
		events:    make(chan common.NotificationRecord, bufferSize),
		workers:   workers,
		ctx:       ctx,
		cancel:    cancel,
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.processEvents()
	}

	return p
}

func (p *Pipeline) Subscribe(observer common.Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (p *Pipeline) Unsubscribe(observer common.Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

// Deliver stores the record and fans it out to observers before
// returning.
func (p *Pipeline) Deliver(record common.NotificationRecord) {
	p.store.Insert(record)
	p.notify(record)
}

// Submit enqueues the record for a worker to deliver. The channel
// bound is the engine's only backpressure point; overflow drops the
// event rather than blocking the producer.
func (p *Pipeline) Submit(record common.NotificationRecord) {
	select {
	case p.events <- record:
	case <-p.ctx.Done():
	default:
		log.Printf("Ingest channel full, dropping notification: %s", record.ID)
	}
}

func (p *Pipeline) notify(record common.NotificationRecord) {
	p.mu.RLock()
	observers := make([]common.Observer, 0, len(p.observers))
	for _, obs := range p.observers {
		observers = append(observers, obs)
	}
	p.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(record); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

func (p *Pipeline) processEvents() {
	defer p.wg.Done()

	for {
		select {
		case record := <-p.events:
			p.Deliver(record)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pipeline) Shutdown() {
	p.cancel()
	p.wg.Wait()
	log.Println("Ingest pipeline shutdown complete")
}
