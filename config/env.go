package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultMongoURI = "mongodb://localhost:27017"
	defaultMongoDB  = "kirana"
	defaultAppPort  = "3000"
	defaultAppEnv   = "local"
	defaultS3Region = "us-east-1"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGO_URI":   defaultMongoURI,
		"MONGO_DB":    defaultMongoDB,
		"APP_PORT":    defaultAppPort,
		"APP_ENV":     defaultAppEnv,
		"S3_BUCKET":   "",
		"S3_REGION":   defaultS3Region,
		"S3_KEY":      "",
		"S3_SECRET":   "",
		"S3_ENDPOINT": "",
		"S3_URL":      "",
	}
}

// MongoURI is the connection string for the catalog store.
func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

// MongoDB is the database name holding the products collection.
func MongoDB() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", defaultS3Region) }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }

// StorageS3URL is the public base URL for stored objects. When unset it
// falls back to the standard virtual-hosted AWS form for the configured
// bucket and region.
func StorageS3URL() string {
	_ = Load()
	if url := get("S3_URL", ""); url != "" {
		return strings.TrimRight(url, "/")
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", StorageS3Bucket(), StorageS3Region())
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
