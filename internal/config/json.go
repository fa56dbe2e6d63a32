package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type, so duration values can be written as
// "1h" or "30s" in the config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		CodeTTL       Duration `json:"code_ttl"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Sender         string   `json:"sender"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`

	Photos struct {
		BaseURL        string   `json:"base_url"`
		AccessKey      string   `json:"access_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"photos,omitempty"`

	ObjectStore struct {
		Region          string `json:"region"`
		Bucket          string `json:"bucket"`
		AccessKeyID     string `json:"access_key_id"`
		SecretAccessKey string `json:"secret_access_key"`
		BaseEndpoint    string `json:"base_endpoint"`
	} `json:"object_store,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"workers,omitempty"`
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
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			CodeTTL:       time.Duration(jsonCfg.App.CodeTTL),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			BaseURL:        jsonCfg.Mail.BaseURL,
			APIKey:         jsonCfg.Mail.APIKey,
			Sender:         jsonCfg.Mail.Sender,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
		Photos: Photos{
			BaseURL:        jsonCfg.Photos.BaseURL,
			AccessKey:      jsonCfg.Photos.AccessKey,
			RequestTimeout: time.Duration(jsonCfg.Photos.RequestTimeout),
		},
		ObjectStore: ObjectStore{
			Region:          jsonCfg.ObjectStore.Region,
			Bucket:          jsonCfg.ObjectStore.Bucket,
			AccessKeyID:     jsonCfg.ObjectStore.AccessKeyID,
			SecretAccessKey: jsonCfg.ObjectStore.SecretAccessKey,
			BaseEndpoint:    jsonCfg.ObjectStore.BaseEndpoint,
		},
		Workers: Workers{
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
		},
		JSONFilePath: "",
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
