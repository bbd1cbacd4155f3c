package templates

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/descent/internal/entities"
	"github.com/KirkDiggler/descent/internal/errors"
	redisclient "github.com/KirkDiggler/descent/internal/redis"
)

const (
	// templatesKey is a hash of template ID to template JSON
	templatesKey = "descent:room_templates"

	errTemplateIDEmpty = "template ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis template repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed template repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	raw, err := r.client.HGetAll(ctx, templatesKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list room templates")
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := &ListOutput{Templates: make([]*entities.RoomTemplate, 0, len(ids))}
	for _, id := range ids {
		t, err := decode(id, raw[id])
		if err != nil {
			return nil, err
		}
		if input.Type != "" && t.Type != input.Type {
			continue
		}
		out.Templates = append(out.Templates, t)
	}

	return out, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	raw, err := r.client.HGet(ctx, templatesKey, input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("room template %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get room template %s", input.ID)
	}

	t, err := decode(input.ID, raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Template: t}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := input.Template.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal room template %s", input.Template.ID)
	}

	if err := r.client.HSet(ctx, templatesKey, input.Template.ID, data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store room template %s", input.Template.ID)
	}

	return &PutOutput{Template: input.Template}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	removed, err := r.client.HDel(ctx, templatesKey, input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete room template %s", input.ID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("room template %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func decode(id, raw string) (*entities.RoomTemplate, error) {
	var t entities.RoomTemplate
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal room template %s", id)
	}
	return &t, nil
}

func (r *redisRepository) Prune(ctx context.Context, input PruneInput) (*PruneOutput, error) {
	raw, err := r.client.HGetAll(ctx, templatesKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan room templates")
	}

	out := &PruneOutput{Checked: len(raw)}
	for id, data := range raw {
		t, err := decode(id, data)
		if err == nil {
			err = t.Validate()
		}
		if err == nil && t.ID != id {
			err = errors.InvalidArgumentf("stored under %s but has id %s", id, t.ID)
		}
		if err != nil {
			out.Removed = append(out.Removed, CorruptEntry{ID: id, Reason: err.Error()})
		}
	}
	sort.Slice(out.Removed, func(i, j int) bool { return out.Removed[i].ID < out.Removed[j].ID })

	if input.DryRun || len(out.Removed) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(out.Removed))
	for _, entry := range out.Removed {
		ids = append(ids, entry.ID)
	}
	if err := r.client.HDel(ctx, templatesKey, ids...).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to remove corrupt room templates")
	}

	return out, nil
}
