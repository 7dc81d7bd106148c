package settings

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDemoValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		cfg     Demo
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     Demo{QueueCapacity: 5, Messages: 16, PopTimeoutMs: 250, ConsumeDelayMs: 1000},
			wantErr: false,
		},
		{
			name:    "negative_pop_timeout_means_wait_forever",
			cfg:     Demo{QueueCapacity: 1, Messages: 1, PopTimeoutMs: -1},
			wantErr: false,
		},
		{
			name:    "zero_capacity_rejected",
			cfg:     Demo{QueueCapacity: 0, Messages: 1},
			wantErr: true,
		},
		{
			name:    "negative_messages_rejected",
			cfg:     Demo{QueueCapacity: 1, Messages: -1},
			wantErr: true,
		},
		{
			name:    "negative_consume_delay_rejected",
			cfg:     Demo{QueueCapacity: 1, Messages: 1, ConsumeDelayMs: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
