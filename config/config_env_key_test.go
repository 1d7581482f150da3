package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"providers": map[string]any{
			"preferredSms": "",
			"whatsapp": map[string]any{
				"phoneNumberId": "",
			},
		},
		"secretKey": map[string]any{
			"admin": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PROVIDERS_PREFERREDSMS", want: "providers.preferredSms"},
		{envKey: "PROVIDERS_WHATSAPP_PHONENUMBERID", want: "providers.whatsapp.phoneNumberId"},
		{envKey: "SECRETKEY_ADMIN", want: "secretKey.admin"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
