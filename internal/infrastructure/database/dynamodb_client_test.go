package database

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		c := ConfigFromEnv()
		if c.Region != "us-east-1" {
			t.Fatalf("expected default region, got %q", c.Region)
		}
		if c.AccessKeyID != "local" || c.SecretAccessKey != "local" {
			t.Fatalf("expected local credentials, got %q/%q", c.AccessKeyID, c.SecretAccessKey)
		}
		if c.Endpoint != "" {
			t.Fatalf("expected no endpoint, got %q", c.Endpoint)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("AWS_REGION", "eu-west-3")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

		c := ConfigFromEnv()
		if c.Region != "eu-west-3" {
			t.Fatalf("expected overridden region, got %q", c.Region)
		}
		if c.Endpoint != "http://dynamodb:8000" {
			t.Fatalf("expected local endpoint, got %q", c.Endpoint)
		}
	})
}
