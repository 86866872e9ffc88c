package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func valid() Config {
	return Config{
		HTTPServer:  HTTPServerConfig{Port: 8080},
		DataService: DataServiceConfig{Driver: DriverMemory},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "memory", mutate: func(*Config) {}},
		{
			name:    "rpc without endpoint",
			mutate:  func(c *Config) { c.DataService.Driver = DriverRPC },
			wantErr: "data_service.endpoint is required for the rpc driver",
		},
		{
			name: "rpc oauth2 without token url",
			mutate: func(c *Config) {
				c.DataService = DataServiceConfig{Driver: DriverRPC, Endpoint: "http://ds", OAuth2: OAuth2Config{ClientID: "id"}}
			},
			wantErr: "data_service.oauth2.token_url is required with a client_id",
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *Config) { c.DataService.Driver = DriverPostgres },
			wantErr: "postgres.dsn is required for the postgres driver",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.DataService.Driver = "odbc" },
			wantErr: `unknown data_service.driver "odbc"`,
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.HTTPServer.Port = 0 },
			wantErr: "http_server.port must be positive, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"hr.read", "hr.write"}, splitList(" hr.read, ,hr.write "))
	assert.Nil(t, splitList(""))
}
