package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// ClientConfig is a per-deployment document personalizing the calendar
// for one mosque or association. A page must never print a misattributed
// identity or location, so loading failures are surfaced as blocking
// errors rather than degraded defaults.
type ClientConfig struct {
	Identity Identity `json:"identity" validate:"required"`
	Contact  Contact  `json:"contact"`
	Location Location `json:"location" validate:"required"`
	Theme    Theme    `json:"theme"`
}

// Identity carries the organization names and logo.
type Identity struct {
	NameFR  string `json:"name_fr" validate:"required"`
	NameTA  string `json:"name_ta"`
	LogoURL string `json:"logo_url" validate:"omitempty,uri"`
}

// Contact is the footer contact block. Bank details and the donation
// link are optional.
type Contact struct {
	Addr1       string `json:"addr1"`
	Addr2       string `json:"addr2,omitempty"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	DonationURL string `json:"donation_url,omitempty" validate:"omitempty,url"`
	Bank        *Bank  `json:"bank,omitempty"`
}

// Bank holds the donation account coordinates.
type Bank struct {
	IBAN string `json:"iban" validate:"required"`
	BIC  string `json:"bic" validate:"required"`
}

// Location overrides the default coordinates.
type Location struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

// Theme carries the brand colors used to restyle the printed page.
type Theme struct {
	ColorBrand    string `json:"color_brand,omitempty" validate:"omitempty,hexcolor"`
	BgHeaderCream string `json:"bg_header_cream,omitempty" validate:"omitempty,hexcolor"`
}

// validate is shared; the validator caches struct metadata internally.
var validate = validator.New()

// ErrClientNotFound signals a bad client identifier.
var ErrClientNotFound = errors.New("client configuration not found")

// LoadClient reads and validates the client document <id>.json in dir.
func LoadClient(dir, id string) (*ClientConfig, error) {
	path := filepath.Join(dir, id+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrClientNotFound, id)
		}
		return nil, fmt.Errorf("failed to read client config %s: %w", path, err)
	}

	var cc ClientConfig
	if err := json.Unmarshal(data, &cc); err != nil {
		return nil, fmt.Errorf("invalid client config %s: %w", path, err)
	}

	if err := validate.Struct(&cc); err != nil {
		return nil, fmt.Errorf("client config %s failed validation: %w", path, err)
	}
	return &cc, nil
}

// ApplyTo overlays the client's location onto the shared configuration.
func (cc *ClientConfig) ApplyTo(cfg *Config) {
	cfg.Latitude = cc.Location.Lat
	cfg.Longitude = cc.Location.Lng
}
