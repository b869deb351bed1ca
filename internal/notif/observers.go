package notif

import (
	"log"

	"notifeed/internal/common"
)

// NewContentObserver raises the presentation layer's "new content"
// signal on every delivered record. The signal is a read cursor: it
// stays up until MarkVisited resets it.
type NewContentObserver struct {
	raise func()
}

func NewNewContentObserver(raise func()) *NewContentObserver {
	return &NewContentObserver{raise: raise}
}

func (o *NewContentObserver) Name() string {
	return "new_content_observer"
}

func (o *NewContentObserver) Update(record common.NotificationRecord) error {
	o.raise()
	return nil
}

// ChannelObserver records the per-channel delivery decision for push
// and email. Transport mechanics live with external collaborators;
// this engine only consults the declared preference and logs the
// outcome.
type ChannelObserver struct {
	channel common.Channel
	prefs   *PreferenceStore
}

func NewChannelObserver(channel common.Channel, prefs *PreferenceStore) *ChannelObserver {
	return &ChannelObserver{
		channel: channel,
		prefs:   prefs,
	}
}

func (o *ChannelObserver) Name() string {
	return string(o.channel) + "_observer"
}

func (o *ChannelObserver) Update(record common.NotificationRecord) error {
	if !o.prefs.ShouldDeliver(record.Type, o.channel) {
		return nil
	}

	log.Printf("Channel %s would deliver notification: id=%s type=%s",
		o.channel, record.ID, record.Type)
	return nil
}
