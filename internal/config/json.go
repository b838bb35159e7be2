package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with Duration fields that accept "5s"-style
// strings in the JSON file.
type jsonConfig struct {
	Storage struct {
		DBPath string `json:"db_path"`
	} `json:"storage,omitempty"`

	Remote struct {
		Backend        string   `json:"backend"`
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		AccessToken    string   `json:"access_token"`
		DatabaseDSN    string   `json:"database_dsn"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		MaxRetries        int      `json:"max_retries"`
		ConflictTolerance Duration `json:"conflict_tolerance"`
		Interval          Duration `json:"interval"`
	} `json:"sync,omitempty"`

	Network struct {
		ProbeInterval Duration `json:"probe_interval"`
		ProbeURL      string   `json:"probe_url"`
	} `json:"network,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Storage: Storage{
			DBPath: jsonCfg.Storage.DBPath,
		},
		Remote: Remote{
			Backend:        jsonCfg.Remote.Backend,
			BaseURL:        jsonCfg.Remote.BaseURL,
			APIKey:         jsonCfg.Remote.APIKey,
			AccessToken:    jsonCfg.Remote.AccessToken,
			DatabaseDSN:    jsonCfg.Remote.DatabaseDSN,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			MaxRetries:        jsonCfg.Sync.MaxRetries,
			ConflictTolerance: time.Duration(jsonCfg.Sync.ConflictTolerance),
			Interval:          time.Duration(jsonCfg.Sync.Interval),
		},
		Network: Network{
			ProbeInterval: time.Duration(jsonCfg.Network.ProbeInterval),
			ProbeURL:      jsonCfg.Network.ProbeURL,
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
