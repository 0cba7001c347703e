package domain

import (
	"strconv"
	"time"
)

// PublisherStatus is the lifecycle state of a publisher account.
type PublisherStatus string

const (
	PublisherActive   PublisherStatus = "Active"
	PublisherInactive PublisherStatus = "Inactive"
)

// Publisher is a traffic source. ID is the sequential internal identifier;
// ReferenceID is an optional external alias some partners send instead.
// PostbackURL is the publisher's own conversion notification template.
type Publisher struct {
	ID          int64
	ReferenceID string
	Name        string
	Email       string
	Status      PublisherStatus
	PostbackURL string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Aliases returns every identifier string this publisher is known by.
// Sampling rules reference publishers loosely (numeric ID or external
// reference), so rule matching accepts any alias.
func (p *Publisher) Aliases() []string {
	aliases := []string{strconv.FormatInt(p.ID, 10)}
	if p.ReferenceID != "" {
		aliases = append(aliases, p.ReferenceID)
	}
	return aliases
}
