package config

import (
	log "github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"
)

func NewSupabaseClient(cfg *Config) *supa.Client {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		log.Fatal("Missing env: SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY")
	}
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		log.Fatalf("Failed to create Supabase client: %v", err)
	}
	return client
}
