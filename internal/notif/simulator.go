package notif

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"notifeed/internal/common"
)

// Simulator is the synthetic real-time producer. While enabled it
// fabricates a plausible record on a fixed cadence and submits it
// through the same ingest path external producers use.
type Simulator struct {
	service  *Service
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSimulator(service *Service, interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Simulator{
		service:  service,
		interval: interval,
	}
}

// SetEnabled starts or stops the generator. Disabling tears the ticker
// down rather than skipping its body.
func (s *Simulator) SetEnabled(enabled bool) {
	if enabled {
		s.start()
	} else {
		s.stop()
	}
}

func (s *Simulator) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Simulator) start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	log.Printf("Real-time simulator started, interval=%s", s.interval)
}

func (s *Simulator) stop() {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	log.Println("Real-time simulator stopped")
}

func (s *Simulator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.emit()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Simulator) emit() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Simulator tick recovered: %v", r)
		}
	}()

	if _, err := s.service.SubmitNotification(SyntheticSpec()); err != nil {
		log.Printf("Simulator failed to submit notification: %v", err)
	}
}

var syntheticActors = []common.Actor{
	{ID: "u-2841", Name: "Emma Wilson", Username: "emmaw", Verified: true, Tier: common.TierPro},
	{ID: "u-1097", Name: "Marcus Chen", Username: "mchen", Verified: false, Tier: common.TierBasic},
	{ID: "u-5530", Name: "Sofia Reyes", Username: "sofiar", Verified: true, Tier: common.TierElite},
	{ID: "u-3312", Name: "Liam O'Brien", Username: "liamob", Verified: false, Tier: common.TierBasic},
	{ID: "u-7284", Name: "Aisha Khan", Username: "aishak", Verified: true, Tier: common.TierPro},
}

type syntheticTemplate struct {
	Type     common.NotificationType
	Category common.Category
	Priority common.Priority
	Title    string
	Message  string
}

var syntheticTemplates = []syntheticTemplate{
	{common.LikeType, common.CategorySocial, common.PriorityLow,
		"New like", "%s liked your post"},
	{common.CommentType, common.CategoryEngagement, common.PriorityMedium,
		"New comment", "%s commented on your post"},
	{common.FollowType, common.CategorySocial, common.PriorityMedium,
		"New follower", "%s started following you"},
	{common.MentionType, common.CategoryEngagement, common.PriorityHigh,
		"You were mentioned", "%s mentioned you in a comment"},
	{common.ShareType, common.CategorySocial, common.PriorityLow,
		"Post shared", "%s shared your post"},
}

// SyntheticSpec builds one plausible notification from the fixed
// actor and template pools.
func SyntheticSpec() common.NotificationSpec {
	actor := syntheticActors[rand.IntN(len(syntheticActors))]
	template := syntheticTemplates[rand.IntN(len(syntheticTemplates))]

	return common.NotificationSpec{
		Type:     template.Type,
		Category: template.Category,
		Priority: template.Priority,
		Title:    template.Title,
		Message:  fmt.Sprintf(template.Message, actor.Name),
		Actor:    &actor,
		Actions: []common.Action{
			{ID: "view", Type: common.ActionView, Label: "View", Primary: true},
		},
	}
}
