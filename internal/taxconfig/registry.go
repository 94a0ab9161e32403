package taxconfig

import (
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

var (
	registryURL string
	defaultYear int
	cache       sync.Map
	client      *http.Client
)

func init() {
	registryURL = os.Getenv("TAX_CONFIG_URL")
	if registryURL != "" {
		client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	defaultYear = year2024.Year
	if y, err := strconv.Atoi(os.Getenv("TAX_YEAR")); err == nil && y > 0 {
		defaultYear = y
	}
}

// DefaultYear is the tax year used when a request does not name one.
func DefaultYear() int {
	return defaultYear
}

// ForYear returns the table set for the given year. Years are resolved
// against the remote registry when TAX_CONFIG_URL is set, with caching;
// anything unresolvable falls back to the built-in table so a
// calculation is never blocked by a missing year.
func ForYear(year int) *Config {
	if year == 0 {
		year = defaultYear
	}
	if year == year2024.Year || registryURL == "" {
		return year2024
	}

	if cfg, ok := cache.Load(year); ok {
		return cfg.(*Config)
	}

	cfg := fetchYear(year)
	cache.Store(year, cfg)
	return cfg
}

func fetchYear(year int) *Config {
	resp, err := client.Get(registryURL + "/years/" + strconv.Itoa(year))
	if err != nil {
		return year2024
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return year2024
	}

	var cfg Config
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return year2024
	}
	if cfg.Year == 0 || len(cfg.FederalBrackets) == 0 {
		return year2024
	}
	return &cfg
}
