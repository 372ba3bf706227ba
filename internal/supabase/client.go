package supabase

import (
	"errors"
	"fmt"

	"github.com/supabase-community/supabase-go"
	"kids-burger-backend/internal/config"
)

var ErrNotConfigured = errors.New("supabase is not configured")

// Client bundles the PostgREST client used for the ingredients table with the
// storage bucket that holds ingredient artwork.
type Client struct {
	Supabase *supabase.Client
	bucket   string
	url      string
	key      string
}

func NewClient(cfg *config.Config) (*Client, error) {
	if !cfg.SupabaseEnabled() {
		return nil, ErrNotConfigured
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Client{
		Supabase: client,
		bucket:   cfg.SupabaseStorageBucket,
		url:      cfg.SupabaseURL,
		key:      cfg.SupabasePublishableKey,
	}, nil
}

// Ingredients returns a catalog source reading the ingredients table.
func (c *Client) Ingredients() *IngredientSource {
	return NewIngredientSource(c)
}

// Images returns the storage client for the configured bucket.
func (c *Client) Images() *StorageClient {
	return NewStorageClient(c.url, c.key, c.bucket)
}
