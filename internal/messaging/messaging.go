// Package messaging publishes domain events over NATS so downstream
// consumers (feed fanout, notifications) can react to new lynts.
package messaging

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"local.dev/lyntr-backend/internal/models"
)

const subjectLyntCreated = "lynt.created"

type LyntCreatedEvent struct {
	LyntID    string  `json:"lyntId"`
	UserID    string  `json:"userId"`
	Content   string  `json:"content"`
	HasImage  bool    `json:"hasImage"`
	Reposted  bool    `json:"reposted"`
	Parent    *string `json:"parent,omitempty"`
	Timestamp string  `json:"timestamp"`
}

type Publisher struct {
	nc *nats.Conn
}

func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) PublishLyntCreated(l models.Lynt) error {
	evt := LyntCreatedEvent{
		LyntID:    l.ID,
		UserID:    l.UserID,
		Content:   l.Content,
		HasImage:  l.HasImage,
		Reposted:  l.Reposted,
		Parent:    l.Parent,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.nc.Publish(subjectLyntCreated, data)
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
