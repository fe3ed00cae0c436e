package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type RoundRepository interface {
	Publish(ctx context.Context, round *entity.Round) error
}

// dbRound announces finished rounds on a pub/sub channel. Nothing is stored.
type dbRound struct {
	client  *redis.Client
	channel string
}

func NewRoundRepository(client *redis.Client, channel string) RoundRepository {
	return &dbRound{
		client:  client,
		channel: channel,
	}
}

func (that *dbRound) Publish(ctx context.Context, round *entity.Round) error {
	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("could not marshal round: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, roundJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish round: %w", err)
	}

	return nil
}

type nopRound struct{}

// NewNopRoundRepository is used when no Redis is configured.
func NewNopRoundRepository() RoundRepository {
	return nopRound{}
}

func (nopRound) Publish(context.Context, *entity.Round) error {
	return nil
}
