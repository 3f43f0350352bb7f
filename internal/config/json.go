package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file format.
type StructuredJSONConfig struct {
	Adapter struct {
		Backend        string   `json:"backend"`
		RequestTimeout Duration `json:"request_timeout"`
		PageSize       int      `json:"page_size"`
	} `json:"adapter,omitempty"`

	Chroma struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		SSL      bool   `json:"ssl"`
		Tenant   string `json:"tenant"`
		Database string `json:"database"`
		Token    string `json:"token"`
	} `json:"chroma,omitempty"`

	Qdrant struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		APIKey    string `json:"api_key"`
		TLS       bool   `json:"tls"`
		TextField string `json:"text_field"`
	} `json:"qdrant,omitempty"`

	Storage struct {
		Journal struct {
			DSN string `json:"dsn"`
		} `json:"journal,omitempty"`
	} `json:"storage,omitempty"`

	Logger struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"logger,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			Backend:        jsonCfg.Adapter.Backend,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PageSize:       jsonCfg.Adapter.PageSize,
		},
		Chroma: Chroma{
			Host:     jsonCfg.Chroma.Host,
			Port:     jsonCfg.Chroma.Port,
			SSL:      jsonCfg.Chroma.SSL,
			Tenant:   jsonCfg.Chroma.Tenant,
			Database: jsonCfg.Chroma.Database,
			Token:    jsonCfg.Chroma.Token,
		},
		Qdrant: Qdrant{
			Host:      jsonCfg.Qdrant.Host,
			Port:      jsonCfg.Qdrant.Port,
			APIKey:    jsonCfg.Qdrant.APIKey,
			TLS:       jsonCfg.Qdrant.TLS,
			TextField: jsonCfg.Qdrant.TextField,
		},
		Storage: Storage{
			Journal: Journal{DSN: jsonCfg.Storage.Journal.DSN},
		},
		Logger: Logger{
			File:  jsonCfg.Logger.File,
			Level: jsonCfg.Logger.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
